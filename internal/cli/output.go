package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Participant response type
type Participant struct {
	Name     string `json:"name"`
	LastSeen int64  `json:"lastSeen"`
}

// Message response type
type Message struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	Time string `json:"time"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// Output renders API results as text or JSON
type Output struct {
	format string
}

// NewOutput creates an Output for the given format
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print renders a result to stdout
func (o *Output) Print(v any) {
	if o.format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(v)
		return
	}

	switch t := v.(type) {
	case []Participant:
		o.printParticipants(t)
	case []Message:
		o.printMessages(t)
	case HealthResult:
		fmt.Println(t.Status)
	case string:
		fmt.Println(t)
	default:
		_ = json.NewEncoder(os.Stdout).Encode(v)
	}
}

func (o *Output) printParticipants(ps []Participant) {
	if len(ps) == 0 {
		fmt.Println("no participants")
		return
	}
	for _, p := range ps {
		last := time.UnixMilli(p.LastSeen).Format("15:04:05")
		fmt.Printf("%s\t(last seen %s)\n", p.Name, last)
	}
}

func (o *Output) printMessages(ms []Message) {
	if len(ms) == 0 {
		fmt.Println("no messages")
		return
	}
	for _, m := range ms {
		switch m.Type {
		case "status":
			fmt.Printf("[%s] %s %s\n", m.Time, m.From, m.Text)
		case "private_message":
			fmt.Printf("[%s] %s -> %s (private): %s\n", m.Time, m.From, m.To, m.Text)
		default:
			fmt.Printf("[%s] %s: %s\n", m.Time, m.From, m.Text)
		}
	}
}
