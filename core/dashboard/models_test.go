package dashboard_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusunite/backend/core/dashboard"
	testutil "github.com/campusunite/backend/tests"
)

func TestProfile_Validate(t *testing.T) {
	validate := testutil.NewValidate()

	tests := []struct {
		name       string
		edit       func(p *dashboard.Profile)
		wantFields []string
	}{
		{name: "valid", edit: func(*dashboard.Profile) {}},
		{name: "no interests", edit: func(p *dashboard.Profile) { p.Interests = nil }},
		{name: "blank name", edit: func(p *dashboard.Profile) { p.FullName = "   " }, wantFields: []string{"full_name"}},
		{name: "bad email", edit: func(p *dashboard.Profile) { p.Email = "asha@" }, wantFields: []string{"email"}},
		{name: "bad phone", edit: func(p *dashboard.Profile) { p.Phone = "call me" }, wantFields: []string{"phone"}},
		{name: "bad dob", edit: func(p *dashboard.Profile) { p.DOB = "12/04/2003" }, wantFields: []string{"dob"}},
		{
			name:       "missing fields",
			edit:       func(p *dashboard.Profile) { *p = dashboard.Profile{} },
			wantFields: []string{"full_name", "email", "phone", "dob", "college", "year", "branch"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.ValidProfile(t)
			tt.edit(&p)

			err := p.Validate(validate)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "want validator.ValidationErrors, got %v", err)
			fields := make([]string, 0, len(vErrs))
			for _, fe := range vErrs {
				fields = append(fields, fe.Field())
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestProfile_Validate_cleans(t *testing.T) {
	p := testutil.ValidProfile(t)
	p.FullName = "  Asha Rao "
	p.Email = " ASHA@College.EDU "
	p.Interests = []string{" Music ", "", "  "}

	require.NoError(t, p.Validate(testutil.NewValidate()))
	assert.Equal(t, "Asha Rao", p.FullName)
	assert.Equal(t, "asha@college.edu", p.Email)
	assert.Equal(t, []string{"Music"}, p.Interests)
	assert.Equal(t, "Asha", p.FirstName())
}
