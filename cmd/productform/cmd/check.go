package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Gobd/formvalidation/collect"
	"github.com/Gobd/formvalidation/product"
	"github.com/Gobd/formvalidation/session"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate one product given as flags",
	Long: `Validate a product from flags and print the typed record, or every
failing field with its messages. Flags that are not given count as missing.

Examples:
  productform check --name "Linen shirt" --description "A light summer shirt" --price 19.99 --category shirts
  productform check --price abc`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

var errInvalidProduct = errors.New("product is invalid")

func init() {
	rootCmd.AddCommand(checkCmd)
	f := checkCmd.Flags()
	f.String(product.FieldName, "", "product name")
	f.String(product.FieldDescription, "", "product description")
	f.String(product.FieldPrice, "", "price")
	f.String(product.FieldCategory, "", "category (shirts, pants, glasses, hats)")
	f.Bool("featured", false, "mark the product as featured")
	f.String("variant", string(product.Handle), "schema variant: reactive, handle or snapshot")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	_, log, err := setup()
	if err != nil {
		printError("load config", err)
		return err
	}
	flags := cmd.Flags()
	name, _ := flags.GetString("variant")
	vr, err := product.ParseVariant(name)
	if err != nil {
		return err
	}

	handles := collect.Handles{
		product.FieldName:        flagHandle(flags, product.FieldName),
		product.FieldDescription: flagHandle(flags, product.FieldDescription),
		product.FieldPrice:       flagHandle(flags, product.FieldPrice),
		product.FieldCategory:    flagHandle(flags, product.FieldCategory),
		product.FieldIsFeatured:  flagHandle(flags, "featured"),
	}

	res, err := session.Submit(cmd.Context(), product.Schema(vr), handles, product.LogSubmitter{Logger: log})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !res.OK() {
		for _, field := range res.Errors.Failing() {
			for _, msg := range res.Errors.Errors(field) {
				fmt.Fprintf(out, "%s: %s\n", field, msg)
			}
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
	fmt.Fprintln(out, string(b))
	return nil
}

// flagHandle reads a flag at submit time. A flag the user did not set reads
// as missing.
func flagHandle(flags *pflag.FlagSet, name string) collect.Handle {
	return collect.HandleFunc(func() any {
		fl := flags.Lookup(name)
		if fl == nil || !fl.Changed {
			return nil
		}
		if fl.Value.Type() == "bool" {
			b, err := flags.GetBool(name)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return nil
			}
			return b
		}
		return fl.Value.String()
	})
}
