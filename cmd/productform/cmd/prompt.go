package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/collect"
	"github.com/Gobd/formvalidation/product"
	"github.com/Gobd/formvalidation/session"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill in a product interactively",
	Long: `Ask for each product field in turn. Every answer re-validates the
whole form; a field's errors are shown once you have answered it.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	_, log, err := setup()
	if err != nil {
		printError("load config", err)
		return err
	}
	schema := product.Schema(product.Reactive)
	sess := session.New(schema)

	inputs := []struct {
		field   string
		message string
	}{
		{product.FieldName, "Name"},
		{product.FieldDescription, "Description"},
		{product.FieldPrice, "Price"},
	}
	for _, in := range inputs {
		var out string
		q := &survey.Input{Message: in.message}
		if err := survey.AskOne(q, &out, survey.WithValidator(textValidator(sess, schema, in.field))); err != nil {
			return promptErr(err)
		}
	}

	labels := make([]string, len(product.Categories))
	for i, c := range product.Categories {
		labels[i] = c.Label
	}
	for {
		var idx int
		q := &survey.Select{Message: "Category", Options: labels}
		if err := survey.AskOne(q, &idx); err != nil {
			return promptErr(err)
		}
		sess.Change(collect.Text(product.FieldCategory, product.Categories[idx].Value))
		errs := sess.Visible().Errors(product.FieldCategory)
		if len(errs) == 0 {
			break
		}
		fmt.Fprintln(cmd.ErrOrStderr(), errs.Error())
	}

	var featured bool
	if err := survey.AskOne(&survey.Confirm{Message: "Featured?"}, &featured); err != nil {
		return promptErr(err)
	}
	sess.Change(collect.Checkbox(product.FieldIsFeatured, featured))

	res, err := sess.Submit(cmd.Context(), product.LogSubmitter{Logger: log})
	if err != nil {
		return err
	}
	if !res.OK() {
		for _, field := range res.Errors.Failing() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, res.Errors.Errors(field).Error())
		}
		return errInvalidProduct
	}
	p, err := product.Decode(res.Record)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

// textValidator stores each answer in the session and rejects it while the
// field has errors of its own.
func textValidator(sess *session.Session, schema v.Schema, field string) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		sess.Change(collect.Text(field, s))
		if errs := v.ValidateField(schema, sess.Candidate(), field); len(errs) > 0 {
			return errs
		}
		return nil
	}
}

func promptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errors.New("cancelled")
	}
	return err
}
