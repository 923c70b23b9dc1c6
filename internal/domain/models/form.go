package models

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/creasty/defaults"
)

// FormValue is the raw text of a numeric form input. It stays a string until
// submit so a cleared field can be told apart from an explicit 0.
type FormValue string

// UnmarshalParam implements echo.BindUnmarshaler for form and query binding.
func (v *FormValue) UnmarshalParam(param string) error {
	*v = FormValue(param)
	return nil
}

// UnmarshalJSON accepts a JSON number, string or null.
func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*v = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		*v = FormValue(b)
	}
	return nil
}

// Int coerces the input the way the number widget does: only the leading
// digits count ("12.7" is 12, "1e3" is 1) and blank or non-numeric text is 0.
func (v FormValue) Int() int {
	n := ParseInteger(string(v))
	if !n.Valid || math.Abs(n.Value) > math.MaxInt32 {
		return 0
	}
	return int(n.Value)
}

func (v FormValue) String() string { return string(v) }

// Option sets of the categorical inputs, in display order.
var (
	JobOptions       = []string{"admin.", "blue-collar", "entrepreneur", "housemaid", "management", "retired", "self-employed", "services", "student", "technician", "unemployed", "unknown"}
	MaritalOptions   = []string{"married", "single", "divorced"}
	EducationOptions = []string{"primary", "secondary", "tertiary", "unknown"}
	YesNoOptions     = []string{"no", "yes"}
	ContactOptions   = []string{"cellular", "telephone", "unknown"}
	POutcomeOptions  = []string{"failure", "other", "success", "unknown"}
	MonthOptions     = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
)

// CustomerInputForm is the editable draft of one prediction request.
type CustomerInputForm struct {
	Age       FormValue `json:"age" form:"age" default:"30"`
	Job       string    `json:"job" form:"job" default:"admin." validate:"oneof=admin. blue-collar entrepreneur housemaid management retired self-employed services student technician unemployed unknown"`
	Marital   string    `json:"marital" form:"marital" default:"married" validate:"oneof=married single divorced"`
	Education string    `json:"education" form:"education" default:"secondary" validate:"oneof=primary secondary tertiary unknown"`
	Balance   FormValue `json:"balance" form:"balance" default:"1787"`
	Default   string    `json:"default" form:"default" default:"no" validate:"oneof=no yes"`
	Housing   string    `json:"housing" form:"housing" default:"no" validate:"oneof=no yes"`
	Loan      string    `json:"loan" form:"loan" default:"no" validate:"oneof=no yes"`
	Contact   string    `json:"contact" form:"contact" default:"cellular" validate:"oneof=cellular telephone unknown"`
	Duration  FormValue `json:"duration" form:"duration" default:"100"`
	Campaign  FormValue `json:"campaign" form:"campaign" default:"1"`
	PDays     FormValue `json:"pdays" form:"pdays" default:"-1"`
	Previous  FormValue `json:"previous" form:"previous" default:"0"`
	POutcome  string    `json:"poutcome" form:"poutcome" default:"unknown" validate:"oneof=failure other success unknown"`
	Month     string    `json:"month" form:"month" default:"jan" validate:"oneof=jan feb mar apr may jun jul aug sep oct nov dec"`
}

// NewCustomerInputForm returns the form as first shown to the user.
func NewCustomerInputForm() *CustomerInputForm {
	f := &CustomerInputForm{}
	if err := defaults.Set(f); err != nil {
		panic(err)
	}
	return f
}

// Payload coerces the numeric inputs and returns the request body for /predict.
func (f *CustomerInputForm) Payload() PredictionRequest {
	return PredictionRequest{
		Age:       f.Age.Int(),
		Job:       f.Job,
		Marital:   f.Marital,
		Education: f.Education,
		Balance:   f.Balance.Int(),
		Default:   f.Default,
		Housing:   f.Housing,
		Loan:      f.Loan,
		Contact:   f.Contact,
		Duration:  f.Duration.Int(),
		Campaign:  f.Campaign.Int(),
		PDays:     f.PDays.Int(),
		Previous:  f.Previous.Int(),
		POutcome:  f.POutcome,
		Month:     f.Month,
	}
}

// PredictionRequest is the JSON body sent to POST /predict.
type PredictionRequest struct {
	Age       int    `json:"age"`
	Job       string `json:"job"`
	Marital   string `json:"marital"`
	Education string `json:"education"`
	Balance   int    `json:"balance"`
	Default   string `json:"default"`
	Housing   string `json:"housing"`
	Loan      string `json:"loan"`
	Contact   string `json:"contact"`
	Duration  int    `json:"duration"`
	Campaign  int    `json:"campaign"`
	PDays     int    `json:"pdays"`
	Previous  int    `json:"previous"`
	POutcome  string `json:"poutcome"`
	Month     string `json:"month"`
}
