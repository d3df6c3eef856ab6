package model

import "admin-srv/internal/docstore"

const CollectionContacts = "Contacts"

// Contacts document fields.
const (
	ContactFieldName      = "name"
	ContactFieldEmail     = "email"
	ContactFieldSubject   = "subject"
	ContactFieldMessage   = "message"
	ContactFieldCreatedAt = "createdAt"
)

// Contact is a message left through the public contact form.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt string
}

func NewContactFromDocument(doc docstore.Document) Contact {
	return Contact{
		ID:        doc.ID,
		Name:      stringField(doc, ContactFieldName),
		Email:     stringField(doc, ContactFieldEmail),
		Subject:   stringField(doc, ContactFieldSubject),
		Message:   stringField(doc, ContactFieldMessage),
		CreatedAt: stringField(doc, ContactFieldCreatedAt),
	}
}

func (c Contact) Fields() map[string]any {
	return map[string]any{
		ContactFieldName:      c.Name,
		ContactFieldEmail:     c.Email,
		ContactFieldSubject:   c.Subject,
		ContactFieldMessage:   c.Message,
		ContactFieldCreatedAt: c.CreatedAt,
	}
}
