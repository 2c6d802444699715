package agent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
)

// Command is one trade extracted from free text.
type Command struct {
	Type     domain.TradeType
	Quantity int64
	Symbol   string
}

// Accepts "buy 5 AAPL", "sell 10 shares of IBM", "Buy 3 shares TSLA".
var commandRe = regexp.MustCompile(
	`(?i)\b(buy|sell)\s+(\d+)\s+(?:shares?\s+(?:of\s+)?)?([A-Za-z][A-Za-z.\-]{0,11})\b`,
)

// ParseCommands extracts trading commands from free text, in order of
// appearance. Unparseable text yields no commands; extraction never
// guesses quantities or symbols.
func ParseCommands(text string) []Command {
	var cmds []Command
	for _, m := range commandRe.FindAllStringSubmatch(text, -1) {
		qty, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil || qty <= 0 {
			continue
		}
		cmds = append(cmds, Command{
			Type:     domain.TradeType(strings.ToLower(m[1])),
			Quantity: qty,
			Symbol:   strings.ToUpper(m[3]),
		})
	}
	return cmds
}

func wantsPortfolio(text string) bool {
	return strings.Contains(strings.ToLower(text), "portfolio")
}
