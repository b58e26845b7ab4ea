package domain

// Example is one transcript from the few-shot corpus biasing the translator:
// a question, the structured query answering it, the stringified result of
// running that query and the conversational answer derived from it.
type Example struct {
	Question  string
	SQLQuery  string
	SQLResult string
	Answer    string
}
