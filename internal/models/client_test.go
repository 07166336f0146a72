package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressListPrepend(t *testing.T) {
	l := AddressList{{ID: "a1", City: "X"}}
	l = l.Prepend(Address{ID: "a2", City: "Y"})
	require.Len(t, l, 2)
	assert.Equal(t, "a2", l[0].ID)
	assert.Equal(t, "a1", l[1].ID)
}

func TestAddressListFind(t *testing.T) {
	l := AddressList{{ID: "a1"}, {ID: "a2"}}
	a, ok := l.Find("a2")
	assert.True(t, ok)
	assert.Equal(t, "a2", a.ID)

	_, ok = l.Find("missing")
	assert.False(t, ok)
}

func TestAddressListReplaceMatchesByIdentityNotIndex(t *testing.T) {
	l := AddressList{{ID: "a1", City: "X"}, {ID: "a2", City: "Y"}, {ID: "a3", City: "Z"}}
	out, ok := l.Replace(Address{ID: "a2", City: "Updated"})
	assert.True(t, ok)
	assert.Equal(t, "Updated", out[1].City)
	// original list untouched
	assert.Equal(t, "Y", l[1].City)

	same, ok := l.Replace(Address{ID: "missing"})
	assert.False(t, ok)
	assert.Equal(t, l, same)
}

func TestAddressListRemovePreservesOrder(t *testing.T) {
	l := AddressList{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}
	out, ok := l.Remove("a2")
	assert.True(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, "a1", out[0].ID)
	assert.Equal(t, "a3", out[1].ID)

	_, ok = l.Remove("missing")
	assert.False(t, ok)
}

func TestAddressListGSTINGuard(t *testing.T) {
	l := AddressList{{ID: "a1", GSTIN: "29ABCDE1234F1Z5"}, {ID: "a2"}}
	assert.True(t, l.HasGSTIN("29ABCDE1234F1Z5"))
	assert.False(t, l.HasGSTIN("07ZYXWV9876K2A1"))
	// addresses without a tax ID never conflict with each other
	assert.False(t, l.HasGSTIN(""))
}

func TestContactPersonListEmailsTaken(t *testing.T) {
	l := ContactPersonList{
		{ID: "c1", Emails: StringList{"asha@x.com", "asha@corp.com"}},
		{ID: "c2", Emails: StringList{"dev@x.com"}},
	}
	assert.True(t, l.EmailsTaken([]string{"new@x.com", "dev@x.com"}))
	assert.False(t, l.EmailsTaken([]string{"new@x.com"}))
	// exact comparison, no case folding
	assert.False(t, l.EmailsTaken([]string{"DEV@x.com"}))
	assert.False(t, ContactPersonList{}.EmailsTaken([]string{"dev@x.com"}))
}

func TestContactPersonListEditing(t *testing.T) {
	l := ContactPersonList{{ID: "c1", FirstName: "Asha"}}
	l = l.Prepend(ContactPerson{ID: "c2", FirstName: "Dev"})
	assert.Equal(t, "c2", l[0].ID)

	out, ok := l.Replace(ContactPerson{ID: "c1", FirstName: "Asha", Designation: "Lead"})
	assert.True(t, ok)
	assert.Equal(t, "Lead", out[1].Designation)

	out, ok = out.Remove("c2")
	assert.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].ID)
}

func TestJSONBRoundTrip(t *testing.T) {
	l := AddressList{{ID: "a1", Line1: "1 Rd", City: "X", State: "Y", Country: "India", Pin: 100001}}
	v, err := l.Value()
	require.NoError(t, err)

	var got AddressList
	require.NoError(t, got.Scan(v))
	assert.Equal(t, l, got)

	var scanned StringList
	require.NoError(t, scanned.Scan(`["a@x.com"]`))
	assert.Equal(t, StringList{"a@x.com"}, scanned)
}

func TestJSONBNilListsStoreEmptyArrays(t *testing.T) {
	// a typed nil slice must store [] rather than marshalling to JSON null
	v, err := NumberList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	v, err = AddressList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	v, err = ContactPersonList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	// and reads of the stored value come back as empty, not nil-with-null
	var nums NumberList
	require.NoError(t, nums.Scan([]byte("[]")))
	assert.Empty(t, nums)
}
