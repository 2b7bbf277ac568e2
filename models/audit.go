package models

import "time"

// AuditEntry records one administrative action taken through the gateway.
type AuditEntry struct {
	ID        string    `bson:"id" json:"id"`
	Actor     string    `bson:"actor" json:"actor"`           // logged-in admin identity
	Action    string    `bson:"action" json:"action"`         // e.g. "booking.create", "session.login"
	Entity    string    `bson:"entity" json:"entity"`         // e.g. "booking", "patient"
	EntityID  string    `bson:"entityId" json:"entityId"`     // backend identifier, if any
	Detail    string    `bson:"detail" json:"detail"`         // short human-readable summary
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
