package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/contacts-api/internal/types"
)

func validInput() types.ContactInput {
	return types.ContactInput{
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		Telephone: "+4400000000",
	}
}

func TestContact(t *testing.T) {
	tests := []struct {
		name         string
		checkEmail   bool
		mutate       func(*types.ContactInput)
		missing      []string
		invalidEmail bool
	}{
		{name: "valid", checkEmail: true, mutate: func(*types.ContactInput) {}},
		{
			name:       "blank first name",
			checkEmail: true,
			mutate:     func(in *types.ContactInput) { in.FirstName = "   " },
			missing:    []string{"firstName"},
		},
		{
			name:       "several missing",
			checkEmail: true,
			mutate: func(in *types.ContactInput) {
				in.LastName = ""
				in.Telephone = "\t\n"
			},
			missing: []string{"lastName", "telephone"},
		},
		{
			name:       "missing email wins over format",
			checkEmail: true,
			mutate:     func(in *types.ContactInput) { in.Email = " " },
			missing:    []string{"email"},
		},
		{
			name:         "bad email",
			checkEmail:   true,
			mutate:       func(in *types.ContactInput) { in.Email = "not-an-email" },
			invalidEmail: true,
		},
		{
			name:       "bad email not checked",
			checkEmail: false,
			mutate:     func(in *types.ContactInput) { in.Email = "not-an-email" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			res := New(tt.checkEmail).Contact(in)
			assert.Equal(t, tt.missing, res.Missing)
			assert.Equal(t, tt.invalidEmail, res.InvalidEmail)
			assert.Equal(t, len(tt.missing) == 0 && !tt.invalidEmail, res.OK())
		})
	}
}

func TestContact_Trims(t *testing.T) {
	in := types.ContactInput{
		FirstName: "  Alice ",
		LastName:  "\tLiddell",
		Email:     " alice@example.com ",
		Telephone: "+44 0000 ",
	}

	res := New(true).Contact(in)
	assert.True(t, res.OK())
	assert.Equal(t, types.ContactInput{
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		Telephone: "+44 0000",
	}, res.Input)
}

func TestContact_EmailFormat(t *testing.T) {
	v := New(true)

	for _, ok := range []string{"a@b.co", "john.doe@example.com", "x+y@sub.domain.org"} {
		in := validInput()
		in.Email = ok
		res := v.Contact(in)
		assert.True(t, res.OK(), ok)
	}
	for _, bad := range []string{"not-an-email", "a@b", "a b@c.d", "a@@b.co", "a@b@c.co", "@b.co", "a@."} {
		in := validInput()
		in.Email = bad
		res := v.Contact(in)
		assert.True(t, res.InvalidEmail, bad)
		assert.Empty(t, res.Missing, bad)
	}
}
