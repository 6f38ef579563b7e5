package field

// Kind names for the built-in field types. These are the registry keys and
// the discriminant tags carried by every instance.
const (
	KindText        = "text"
	KindTextArea    = "textarea"
	KindNumber      = "number"
	KindPercent     = "percent"
	KindBoolean     = "boolean"
	KindDate        = "date"
	KindTime        = "time"
	KindDateTime    = "datetime"
	KindColor       = "color"
	KindPhone       = "phone"
	KindEmail       = "email"
	KindURL         = "url"
	KindJSON        = "json"
	KindTags        = "tags"
	KindMasked      = "masked"
	KindSlug        = "slug"
	KindSelect      = "select"
	KindMultiSelect = "multiselect"
	KindRichText    = "richtext"
	KindHidden      = "hidden"
	KindGroup       = "group"
	KindArray       = "array"
)

func init() {
	Register(KindText, func(name, label string, cfg Config) Field { return NewText(name, label, cfg) })
	Register(KindTextArea, func(name, label string, cfg Config) Field { return NewTextArea(name, label, cfg) })
	Register(KindNumber, func(name, label string, cfg Config) Field { return NewNumber(name, label, cfg) })
	Register(KindPercent, func(name, label string, cfg Config) Field { return NewPercent(name, label, cfg) })
	Register(KindBoolean, func(name, label string, cfg Config) Field { return NewBoolean(name, label, cfg) })
	Register(KindDate, func(name, label string, cfg Config) Field { return NewDate(name, label, cfg) })
	Register(KindTime, func(name, label string, cfg Config) Field { return NewTime(name, label, cfg) })
	Register(KindDateTime, func(name, label string, cfg Config) Field { return NewDateTime(name, label, cfg) })
	Register(KindColor, func(name, label string, cfg Config) Field { return NewColor(name, label, cfg) })
	Register(KindPhone, func(name, label string, cfg Config) Field { return NewPhone(name, label, cfg) })
	Register(KindEmail, func(name, label string, cfg Config) Field { return NewEmail(name, label, cfg) })
	Register(KindURL, func(name, label string, cfg Config) Field { return NewURL(name, label, cfg) })
	Register(KindJSON, func(name, label string, cfg Config) Field { return NewJSON(name, label, cfg) })
	Register(KindTags, func(name, label string, cfg Config) Field { return NewTags(name, label, cfg) })
	Register(KindMasked, func(name, label string, cfg Config) Field { return NewMasked(name, label, cfg) })
	Register(KindSlug, func(name, label string, cfg Config) Field { return NewSlug(name, label, cfg) })
	Register(KindSelect, func(name, label string, cfg Config) Field { return NewSelect(name, label, cfg) })
	Register(KindMultiSelect, func(name, label string, cfg Config) Field { return NewMultiSelect(name, label, cfg) })
	Register(KindRichText, func(name, label string, cfg Config) Field { return NewRichText(name, label, cfg) })
	Register(KindHidden, func(name, label string, cfg Config) Field { return NewHidden(name, label, cfg) })
}
