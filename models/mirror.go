package models

// MirrorProperty is the schema-less counterpart of Property. Legacy records
// arrive with heterogeneous shapes and are stored verbatim; nothing here is
// validated beyond being a JSON object.
type MirrorProperty map[string]interface{}

func (m MirrorProperty) ID() string {
	if id, ok := m["_id"].(string); ok {
		return id
	}
	return ""
}

func (m MirrorProperty) SetID(id string) {
	m["_id"] = id
}
