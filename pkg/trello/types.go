package trello

// List keys in board order. Keys match the scheduler's bucket values so the
// use case can address lists without knowing Trello naming.
const (
	ListKeyToday     = "today"
	ListKeyTomorrow  = "tomorrow"
	ListKeyThisWeek  = "this_week"
	ListKeyLater     = "later"
	ListKeyCompleted = "completed"
)

// listSpec pins the display name for each list key, in creation order.
var listSpecs = []struct {
	Key  string
	Name string
}{
	{ListKeyToday, "🔥 Today"},
	{ListKeyTomorrow, "📅 Tomorrow"},
	{ListKeyThisWeek, "📆 This Week"},
	{ListKeyLater, "🗓️ Later"},
	{ListKeyCompleted, "✅ Completed"},
}

// DomainColors maps a task domain to its Trello label color.
var DomainColors = map[string]string{
	"Clinical": "red",
	"Research": "purple",
	"Admin":    "blue",
	"Home":     "green",
	"Hobby":    "orange",
}

// Board is a resolved board with its list IDs keyed by list key.
type Board struct {
	ID    string
	Name  string
	Lists map[string]string
}

// Card is a created Trello card.
type Card struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCardRequest is the input for creating a card.
type CreateCardRequest struct {
	ListID  string
	BoardID string
	Name    string
	Desc    string
	Due     string // ISO-8601, empty for none
	// Label to attach, created on the board when missing. Empty LabelName
	// skips labeling.
	LabelName  string
	LabelColor string
}

type boardInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type listInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type labelInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
