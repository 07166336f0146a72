package merge

import (
	"encoding/json"
	"testing"

	"recruitdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestScalar(t *testing.T) {
	assert.Equal(t, "old", Scalar("old", nil))
	assert.Equal(t, "old", Scalar("old", strptr("")))
	assert.Equal(t, "new", Scalar("old", strptr("new")))
}

func TestInt(t *testing.T) {
	assert.Equal(t, 100001, Int(100001, nil))
	assert.Equal(t, 100001, Int(100001, intptr(0)))
	assert.Equal(t, 560001, Int(100001, intptr(560001)))
}

func TestListAbsentKeepsCurrent(t *testing.T) {
	cur := []string{"a@x.com", "b@x.com"}
	got, changed := List(cur, nil)
	assert.False(t, changed)
	assert.Equal(t, cur, got)

	got, changed = List(cur, []string{})
	assert.False(t, changed)
	assert.Equal(t, cur, got)
}

func TestListContainedValueIsNoop(t *testing.T) {
	cur := []string{"a@x.com", "b@x.com"}
	got, changed := List(cur, []string{"a@x.com"})
	assert.False(t, changed)
	assert.Equal(t, cur, got)
}

func TestListNewValueAppendsLast(t *testing.T) {
	cur := []int64{911, 912}
	got, changed := List(cur, []int64{913})
	assert.True(t, changed)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{911, 912, 913}, got)
	// current list is untouched
	assert.Equal(t, []int64{911, 912}, cur)
}

func TestListNoNormalization(t *testing.T) {
	cur := []string{"A@X.COM"}
	got, changed := List(cur, []string{"a@x.com"})
	assert.True(t, changed)
	assert.Equal(t, []string{"A@X.COM", "a@x.com"}, got)
}

func TestListMultiElementConcatenatesWholesale(t *testing.T) {
	cur := []string{"a@x.com"}
	// internal duplicates of a multi-element incoming list are kept
	got, changed := List(cur, []string{"b@x.com", "b@x.com"})
	assert.True(t, changed)
	assert.Equal(t, []string{"a@x.com", "b@x.com", "b@x.com"}, got)
}

func TestFlexListDecodesScalarAndArray(t *testing.T) {
	var f FlexList[string]
	require.NoError(t, json.Unmarshal([]byte(`"a@x.com"`), &f))
	assert.Equal(t, FlexList[string]{"a@x.com"}, f)

	require.NoError(t, json.Unmarshal([]byte(`["a@x.com","b@x.com"]`), &f))
	assert.Equal(t, FlexList[string]{"a@x.com", "b@x.com"}, f)

	var n FlexList[int64]
	require.NoError(t, json.Unmarshal([]byte(`911`), &n))
	assert.Equal(t, FlexList[int64]{911}, n)

	assert.Error(t, json.Unmarshal([]byte(`{"not":"a list"}`), &n))
}

func TestClientPatchApply(t *testing.T) {
	c := models.Client{
		Name:           "Acme",
		Division:       "North",
		ContactNumbers: models.NumberList{911},
		Emails:         models.StringList{"a@x.com"},
	}

	noops := ClientPatch{}.Apply(&c)
	assert.Empty(t, noops)
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, "North", c.Division)
	assert.Equal(t, models.StringList{"a@x.com"}, c.Emails)

	noops = ClientPatch{
		Name:   strptr("Acme Corp"),
		Emails: FlexList[string]{"a@x.com"},
	}.Apply(&c)
	assert.Equal(t, []string{"emails"}, noops)
	assert.Equal(t, "Acme Corp", c.Name)
	assert.Equal(t, models.StringList{"a@x.com"}, c.Emails)

	noops = ClientPatch{
		ContactNumbers: FlexList[int64]{912},
		Emails:         FlexList[string]{"b@x.com"},
	}.Apply(&c)
	assert.Empty(t, noops)
	assert.Equal(t, models.NumberList{911, 912}, c.ContactNumbers)
	assert.Equal(t, models.StringList{"a@x.com", "b@x.com"}, c.Emails)
}

func TestAddressPatchApply(t *testing.T) {
	a := models.Address{
		ID:      "addr-1",
		Line1:   "1 Rd",
		City:    "X",
		State:   "Y",
		Country: "India",
		Pin:     100001,
	}
	AddressPatch{
		Line2: strptr("Suite 4"),
		Pin:   intptr(560001),
	}.Apply(&a)
	assert.Equal(t, "addr-1", a.ID)
	assert.Equal(t, "1 Rd", a.Line1)
	assert.Equal(t, "Suite 4", a.Line2)
	assert.Equal(t, "India", a.Country)
	assert.Equal(t, 560001, a.Pin)
}

func TestContactPersonPatchApply(t *testing.T) {
	p := models.ContactPerson{
		ID:             "cp-1",
		FirstName:      "Asha",
		LastName:       "Rao",
		ContactNumbers: models.NumberList{911},
		Emails:         models.StringList{"asha@x.com"},
	}
	noops := ContactPersonPatch{
		Designation:    strptr("Manager"),
		ContactNumbers: FlexList[int64]{911},
		Emails:         FlexList[string]{"asha@corp.com"},
	}.Apply(&p)
	assert.Equal(t, []string{"contactNumbers"}, noops)
	assert.Equal(t, "Manager", p.Designation)
	assert.Equal(t, models.NumberList{911}, p.ContactNumbers)
	assert.Equal(t, models.StringList{"asha@x.com", "asha@corp.com"}, p.Emails)
}

func TestUserPatchApply(t *testing.T) {
	u := models.User{
		FirstName: "Dev",
		LastName:  "Nair",
		Email:     "dev@x.com",
		UserTypes: models.StringList{"recruiter"},
	}
	noops := UserPatch{
		UserTypes: FlexList[string]{"admin"},
		Password:  strptr("ignored-here"),
	}.Apply(&u)
	assert.Empty(t, noops)
	assert.Equal(t, models.StringList{"recruiter", "admin"}, u.UserTypes)
	// Apply never touches the stored hash; the handler owns password changes
	assert.Empty(t, u.PasswordHash)

	noops = UserPatch{UserTypes: FlexList[string]{"admin"}}.Apply(&u)
	assert.Equal(t, []string{"userType"}, noops)
	assert.Equal(t, models.StringList{"recruiter", "admin"}, u.UserTypes)
}
