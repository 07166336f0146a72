package merge

import "recruitdesk/internal/models"

// ClientPatch is the decoded body of PUT /clients/{id}. Nil fields were
// absent from the request and leave the stored value untouched.
type ClientPatch struct {
	Name           *string          `json:"name"`
	Division       *string          `json:"division"`
	Vertical       *string          `json:"vertical"`
	Logo           *string          `json:"logo"`
	ContactNumbers FlexList[int64]  `json:"contactNumbers"`
	Emails         FlexList[string] `json:"emails"`
}

// Apply merges the patch into c and returns the names of multi-valued
// fields whose incoming value was already present (logged as no-ops).
func (p ClientPatch) Apply(c *models.Client) []string {
	c.Name = Scalar(c.Name, p.Name)
	c.Division = Scalar(c.Division, p.Division)
	c.Vertical = Scalar(c.Vertical, p.Vertical)
	c.Logo = Scalar(c.Logo, p.Logo)

	var noops []string
	if nums, ok := List(c.ContactNumbers, p.ContactNumbers); ok {
		c.ContactNumbers = nums
	} else if len(p.ContactNumbers) > 0 {
		noops = append(noops, "contactNumbers")
	}
	if emails, ok := List(c.Emails, p.Emails); ok {
		c.Emails = emails
	} else if len(p.Emails) > 0 {
		noops = append(noops, "emails")
	}
	return noops
}

// AddressPatch is the decoded body of PUT /clients/address/{clientID}/{addressID}.
type AddressPatch struct {
	Line1   *string `json:"line1"`
	Line2   *string `json:"line2"`
	Line3   *string `json:"line3"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Pin     *int    `json:"pin"`
	GSTIN   *string `json:"gstin"`
}

func (p AddressPatch) Apply(a *models.Address) {
	a.Line1 = Scalar(a.Line1, p.Line1)
	a.Line2 = Scalar(a.Line2, p.Line2)
	a.Line3 = Scalar(a.Line3, p.Line3)
	a.City = Scalar(a.City, p.City)
	a.State = Scalar(a.State, p.State)
	a.Country = Scalar(a.Country, p.Country)
	a.Pin = Int(a.Pin, p.Pin)
	a.GSTIN = Scalar(a.GSTIN, p.GSTIN)
}

// ContactPersonPatch is the decoded body of
// PUT /clients/contactperson/{clientID}/{contactPersonID}.
type ContactPersonPatch struct {
	FirstName      *string          `json:"firstName"`
	LastName       *string          `json:"lastName"`
	Designation    *string          `json:"designation"`
	ContactNumbers FlexList[int64]  `json:"contactNumbers"`
	Emails         FlexList[string] `json:"emails"`
}

func (p ContactPersonPatch) Apply(cp *models.ContactPerson) []string {
	cp.FirstName = Scalar(cp.FirstName, p.FirstName)
	cp.LastName = Scalar(cp.LastName, p.LastName)
	cp.Designation = Scalar(cp.Designation, p.Designation)

	var noops []string
	if nums, ok := List(cp.ContactNumbers, p.ContactNumbers); ok {
		cp.ContactNumbers = nums
	} else if len(p.ContactNumbers) > 0 {
		noops = append(noops, "contactNumbers")
	}
	if emails, ok := List(cp.Emails, p.Emails); ok {
		cp.Emails = emails
	} else if len(p.Emails) > 0 {
		noops = append(noops, "emails")
	}
	return noops
}

// UserPatch is the decoded body of PUT /users/{id}. Password is merged by
// the handler, which re-hashes it before storage.
type UserPatch struct {
	FirstName *string          `json:"firstName"`
	LastName  *string          `json:"lastName"`
	Email     *string          `json:"email"`
	Avatar    *string          `json:"avatar"`
	Password  *string          `json:"password"`
	UserTypes FlexList[string] `json:"userType"`
}

func (p UserPatch) Apply(u *models.User) []string {
	u.FirstName = Scalar(u.FirstName, p.FirstName)
	u.LastName = Scalar(u.LastName, p.LastName)
	u.Email = Scalar(u.Email, p.Email)
	u.Avatar = Scalar(u.Avatar, p.Avatar)

	var noops []string
	if types, ok := List(u.UserTypes, p.UserTypes); ok {
		u.UserTypes = types
	} else if len(p.UserTypes) > 0 {
		noops = append(noops, "userType")
	}
	return noops
}
