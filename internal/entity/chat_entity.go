package entity

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatState is where a single chat request ended up. Nothing about it is persisted.
type ChatState string

const (
	ChatStateIdle           ChatState = "idle"
	ChatStateFetchingCorpus ChatState = "fetching_corpus"
	ChatStateEmptyCorpus    ChatState = "empty_corpus"
	ChatStateGenerating     ChatState = "generating"
	ChatStateParsing        ChatState = "parsing"
	ChatStateDone           ChatState = "done"
	ChatStateErrored        ChatState = "errored"
)

// ChatTurn lives only as long as the in-memory chat session holding it.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatSession struct {
	Id      string
	Subject Subject
	Turns   []ChatTurn
}
