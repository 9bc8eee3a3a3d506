package partials

import (
	"testing"

	"sarveen_landing_go/models"

	"github.com/stretchr/testify/assert"
)

func TestFieldHelpers(t *testing.T) {
	state := models.ContactFormState{
		Submission: models.Submission{Name: "Ada", Phone: "123", Email: "bad", Business: "Acme"},
	}.Failed(models.ProblemInvalid, models.FieldEmail)

	assert.Equal(t, "Ada", fieldValue(state, models.FieldName))
	assert.Equal(t, "123", fieldValue(state, models.FieldPhone))
	assert.Equal(t, "bad", fieldValue(state, models.FieldEmail))
	assert.Equal(t, "Acme", fieldValue(state, models.FieldBusiness))
	assert.Equal(t, "", fieldValue(state, "unknown"))

	assert.Equal(t, "true", ariaInvalid(state, models.FieldEmail))
	assert.Equal(t, "false", ariaInvalid(state, models.FieldName))
}

func TestContactRows(t *testing.T) {
	var names []string
	var required []string
	for _, row := range contactRows {
		for _, f := range row {
			names = append(names, f.Name)
			if f.Required {
				required = append(required, f.Name)
			}
		}
	}
	assert.Equal(t, []string{"name", "phone", "email", "business"}, names)
	assert.Equal(t, []string{"name", "phone"}, required)
}
