package partials

import (
	"sarveen_landing_go/models"
)

// ariaInvalid returns the aria-invalid value of a field
func ariaInvalid(state models.ContactFormState, field string) string {
	if state.HasError(field) {
		return "true"
	}
	return "false"
}

// fieldValue returns the value a field is re-rendered with
func fieldValue(state models.ContactFormState, field string) string {
	switch field {
	case models.FieldName:
		return state.Submission.Name
	case models.FieldPhone:
		return state.Submission.Phone
	case models.FieldEmail:
		return state.Submission.Email
	case models.FieldBusiness:
		return state.Submission.Business
	}
	return ""
}

// formField describes one input of the contact form
type formField struct {
	Name      string
	InputType string
	Required  bool
	AutoComp  string
}

// contactRows lays the four inputs out in two rows of two
var contactRows = [][]formField{
	{
		{Name: models.FieldName, InputType: "text", Required: true, AutoComp: "name"},
		{Name: models.FieldPhone, InputType: "tel", Required: true, AutoComp: "tel"},
	},
	{
		{Name: models.FieldEmail, InputType: "email", AutoComp: "email"},
		{Name: models.FieldBusiness, InputType: "text", AutoComp: "organization"},
	},
}
