package entity

import "time"

const (
	FieldCreatedBy = "createdBy"
	FieldCreatedOn = "createdOn"
	FieldUpdatedBy = "updatedBy"
	FieldUpdatedOn = "updatedOn"

	// FieldPending marks a placeholder document that has not been committed yet.
	FieldPending = "pending"
)

// Record is anything that can be written back as a document.
type Record interface {
	Document() Fields
}

type Audit struct {
	CreatedBy string     `json:"createdBy"`
	CreatedOn time.Time  `json:"createdOn"`
	UpdatedBy *string    `json:"updatedBy"`
	UpdatedOn *time.Time `json:"updatedOn"`
}

func AuditFrom(f Fields) Audit {
	a := Audit{CreatedBy: f.String(FieldCreatedBy)}
	if t, ok := f.Time(FieldCreatedOn); ok {
		a.CreatedOn = t
	}
	if by := f.String(FieldUpdatedBy); by != "" {
		a.UpdatedBy = &by
	}
	a.UpdatedOn = f.TimePtr(FieldUpdatedOn)
	return a
}

func (a Audit) put(f Fields) {
	f[FieldCreatedBy] = a.CreatedBy
	f[FieldCreatedOn] = a.CreatedOn
	if a.UpdatedBy != nil {
		f[FieldUpdatedBy] = *a.UpdatedBy
	} else {
		f[FieldUpdatedBy] = nil
	}
	if a.UpdatedOn != nil {
		f[FieldUpdatedOn] = *a.UpdatedOn
	} else {
		f[FieldUpdatedOn] = nil
	}
}

// StampCreate records the creator; updatedBy/On stay null until the first update.
func StampCreate(f Fields, actor string, now time.Time) {
	f[FieldCreatedBy] = actor
	f[FieldCreatedOn] = now
	f[FieldUpdatedBy] = nil
	f[FieldUpdatedOn] = nil
}

// StampUpdate keeps the creation stamp of existing and records the updater.
func StampUpdate(f, existing Fields, actor string, now time.Time) {
	f[FieldCreatedBy] = existing[FieldCreatedBy]
	f[FieldCreatedOn] = existing[FieldCreatedOn]
	f[FieldUpdatedBy] = actor
	f[FieldUpdatedOn] = now
}

func timeOrNil(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
