package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/passcheck/internal/predict"
	"github.com/abhisek/passcheck/internal/student"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict pass/fail for one student",
	Example: `  passcheck predict --gender male --race "group C" --parental "bachelor's degree" \
    --lunch standard --test-prep completed --math 90 --reading 85 --writing 88`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := recordFromFlags(cmd)
		if err != nil {
			return err
		}
		p, _, err := loadPredictor(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		return runPredict(cmd.OutOrStdout(), p, rec, asJSON)
	},
}

func init() {
	def := student.DefaultRecord()
	f := predictCmd.Flags()
	f.String("gender", def.Gender, "Gender")
	f.String("race", def.RaceEthnicity, "Race/ethnicity group")
	f.String("parental", def.ParentalEducation, "Parental level of education")
	f.String("lunch", def.Lunch, "Lunch type")
	f.String("test-prep", def.TestPrep, "Test preparation course")
	f.Int("math", def.Math, "Math score (0-100)")
	f.Int("reading", def.Reading, "Reading score (0-100)")
	f.Int("writing", def.Writing, "Writing score (0-100)")
	f.Bool("json", false, "Print the result as JSON")
}

func recordFromFlags(cmd *cobra.Command) (student.Record, error) {
	f := cmd.Flags()
	var r student.Record
	var err error
	if r.Gender, err = f.GetString("gender"); err != nil {
		return r, err
	}
	if r.RaceEthnicity, err = f.GetString("race"); err != nil {
		return r, err
	}
	if r.ParentalEducation, err = f.GetString("parental"); err != nil {
		return r, err
	}
	if r.Lunch, err = f.GetString("lunch"); err != nil {
		return r, err
	}
	if r.TestPrep, err = f.GetString("test-prep"); err != nil {
		return r, err
	}
	if r.Math, err = f.GetInt("math"); err != nil {
		return r, err
	}
	if r.Reading, err = f.GetInt("reading"); err != nil {
		return r, err
	}
	if r.Writing, err = f.GetInt("writing"); err != nil {
		return r, err
	}
	return r, nil
}

type recordPredictor interface {
	Predict(r student.Record) (predict.Result, error)
}

// runPredict scores rec and writes the verdict to w.
func runPredict(w io.Writer, p recordPredictor, rec student.Record, asJSON bool) error {
	res, err := p.Predict(rec)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			predict.Result
			Message string `json:"message"`
		}{res, res.Tier.Message()})
	}

	fmt.Fprintln(w, res.Headline())
	fmt.Fprintf(w, "P(pass): %s\n", res.FormatProbability())
	fmt.Fprintln(w, res.Tier.Message())
	return nil
}
