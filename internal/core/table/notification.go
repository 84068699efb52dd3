package table

// Kind classifies a notification for the presentation layer.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is the (kind, title, detail) triple handed to the
// presentation layer. Every failure and every successful mutation produces
// exactly one.
type Notification struct {
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
