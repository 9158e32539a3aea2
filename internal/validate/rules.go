package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sells-group/climatescope-data/internal/model"
)

// Row-level rules, checked with struct tags.

type geographyRecord struct {
	ID     string `validate:"required,len=2,alpha"`
	Name   string `validate:"required"`
	Grid   string `validate:"required,oneof=on off"`
	Region string `validate:"required"`
}

type regionRecord struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
}

type topicRecord struct {
	ID     string `validate:"required"`
	Name   string `validate:"required"`
	Weight string `validate:"required,numeric"`
}

type chartRecord struct {
	ID             string `validate:"required"`
	Type           string `validate:"required,charttype"`
	ApplicableGrid string `validate:"omitempty,oneof=both on off"`
}

type answerRecord struct {
	ID        string `validate:"required"`
	Indicator string `validate:"required"`
	Label     string `validate:"required"`
}

// newRules returns a validator with the chart type rule registered.
func newRules() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("charttype", func(fl validator.FieldLevel) bool {
		_, err := model.ParseChartType(fl.Field().String())
		return err == nil
	})
	return v
}

// checkRecord validates rec and reports each failed field against the
// 1-based CSV line of row index i.
func (s *Suite) checkRecord(r *Report, file string, i int, rec any) {
	err := s.rules.Struct(rec)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		r.addf(file, CheckRecord, "line %d: %v", i+2, err)
		return
	}
	for _, fe := range fieldErrs {
		r.addf(file, CheckRecord, "line %d: %s %q %s", i+2, fe.Field(), fe.Value(), describe(fe))
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "charttype":
		return fmt.Sprintf("must be one of %v", model.ChartTypes())
	case "len":
		return fmt.Sprintf("must be %s characters", fe.Param())
	case "alpha":
		return "must be letters only"
	case "numeric":
		return "must be a number"
	default:
		return "failed " + fe.Tag()
	}
}
