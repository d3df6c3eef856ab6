package model

import "admin-srv/internal/docstore"

const CollectionUsers = "Users"

// Users document fields.
const (
	UserFieldEmail     = "email"
	UserFieldFirstName = "firstName"
	UserFieldLastName  = "lastName"
	UserFieldUserName  = "userName"
	UserFieldCreatedAt = "createdAt"
)

// User is the profile document of a console account. ID equals the account id.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	UserName  string
	CreatedAt string
}

// NewUserFromDocument converts a Users document to a User.
func NewUserFromDocument(doc docstore.Document) User {
	return User{
		ID:        doc.ID,
		Email:     stringField(doc, UserFieldEmail),
		FirstName: stringField(doc, UserFieldFirstName),
		LastName:  stringField(doc, UserFieldLastName),
		UserName:  stringField(doc, UserFieldUserName),
		CreatedAt: stringField(doc, UserFieldCreatedAt),
	}
}

// Fields returns the document fields of u.
func (u User) Fields() map[string]any {
	return map[string]any{
		UserFieldEmail:     u.Email,
		UserFieldFirstName: u.FirstName,
		UserFieldLastName:  u.LastName,
		UserFieldUserName:  u.UserName,
		UserFieldCreatedAt: u.CreatedAt,
	}
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func stringField(doc docstore.Document, field string) string {
	v, _ := doc.Value(field)
	s, _ := v.(string)
	return s
}
