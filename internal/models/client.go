package models

import "time"

type Client struct {
	ID             string            `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string            `gorm:"uniqueIndex;not null" json:"name"`
	Division       string            `json:"division,omitempty"`
	Vertical       string            `json:"vertical,omitempty"`
	Logo           string            `json:"logo,omitempty"`
	ContactNumbers NumberList        `gorm:"type:jsonb" json:"contactNumbers"`
	Emails         StringList        `gorm:"type:jsonb;not null" json:"emails"`
	Addresses      AddressList       `gorm:"type:jsonb" json:"addresses"`
	ContactPersons ContactPersonList `gorm:"type:jsonb" json:"contactPersons"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Address is embedded in a client's jsonb address list. It has no identity
// outside its parent.
type Address struct {
	ID      string `json:"id"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	Line3   string `json:"line3,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pin     int    `json:"pin"`
	GSTIN   string `json:"gstin,omitempty"`
}

// ContactPerson is embedded in a client's jsonb contact person list.
type ContactPerson struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Designation    string     `json:"designation,omitempty"`
	ContactNumbers NumberList `json:"contactNumbers"`
	Emails         StringList `json:"emails"`
}

// Find returns the address with the given id, scanning in stored order.
func (l AddressList) Find(id string) (Address, bool) {
	for _, a := range l {
		if a.ID == id {
			return a, true
		}
	}
	return Address{}, false
}

// Prepend inserts a at the front of the list so stored order reflects recency.
func (l AddressList) Prepend(a Address) AddressList {
	return append(AddressList{a}, l...)
}

// Replace swaps the element whose id matches a.ID. Matching is by identity,
// not position, so a concurrent reorder cannot clobber the wrong element.
func (l AddressList) Replace(a Address) (AddressList, bool) {
	out := make(AddressList, len(l))
	copy(out, l)
	for i := range out {
		if out[i].ID == a.ID {
			out[i] = a
			return out, true
		}
	}
	return l, false
}

// Remove drops the address with the given id, preserving the relative order
// of the remaining elements.
func (l AddressList) Remove(id string) (AddressList, bool) {
	out := make(AddressList, 0, len(l))
	found := false
	for _, a := range l {
		if !found && a.ID == id {
			found = true
			continue
		}
		out = append(out, a)
	}
	return out, found
}

// HasGSTIN reports whether any address carries the given tax ID. Empty tax
// IDs never match: two addresses both lacking one do not conflict.
func (l AddressList) HasGSTIN(gstin string) bool {
	if gstin == "" {
		return false
	}
	for _, a := range l {
		if a.GSTIN == gstin {
			return true
		}
	}
	return false
}

func (l ContactPersonList) Find(id string) (ContactPerson, bool) {
	for _, p := range l {
		if p.ID == id {
			return p, true
		}
	}
	return ContactPerson{}, false
}

func (l ContactPersonList) Prepend(p ContactPerson) ContactPersonList {
	return append(ContactPersonList{p}, l...)
}

func (l ContactPersonList) Replace(p ContactPerson) (ContactPersonList, bool) {
	out := make(ContactPersonList, len(l))
	copy(out, l)
	for i := range out {
		if out[i].ID == p.ID {
			out[i] = p
			return out, true
		}
	}
	return l, false
}

func (l ContactPersonList) Remove(id string) (ContactPersonList, bool) {
	out := make(ContactPersonList, 0, len(l))
	found := false
	for _, p := range l {
		if !found && p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	return out, found
}

// EmailsTaken reports whether any of the given emails already appears in an
// existing contact person's email list. Comparison is exact, no case folding.
func (l ContactPersonList) EmailsTaken(emails []string) bool {
	for _, p := range l {
		for _, have := range p.Emails {
			for _, want := range emails {
				if have == want {
					return true
				}
			}
		}
	}
	return false
}
