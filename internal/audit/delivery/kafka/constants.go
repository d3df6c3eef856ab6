package kafka

const (
	TopicAudit = "admin.audit"
)
