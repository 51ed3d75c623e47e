package alpaca

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

// ParseTimeFrame converts a config string like "1Min", "15Min", "1Hour" or
// "1Day" into the SDK timeframe. A bare unit ("Min") counts as 1.
func ParseTimeFrame(s string) (marketdata.TimeFrame, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return marketdata.TimeFrame{}, fmt.Errorf("empty timeframe")
	}

	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	n := 1
	if i > 0 {
		v, err := strconv.Atoi(t[:i])
		if err != nil || v < 1 {
			return marketdata.TimeFrame{}, fmt.Errorf("bad timeframe %q", s)
		}
		n = v
	}

	switch strings.ToLower(t[i:]) {
	case "min", "mins", "minute", "minutes":
		return marketdata.NewTimeFrame(n, marketdata.Min), nil
	case "hour", "hours":
		return marketdata.NewTimeFrame(n, marketdata.Hour), nil
	case "day", "days":
		return marketdata.NewTimeFrame(n, marketdata.Day), nil
	case "week", "weeks":
		return marketdata.NewTimeFrame(n, marketdata.Week), nil
	case "month", "months":
		return marketdata.NewTimeFrame(n, marketdata.Month), nil
	default:
		return marketdata.TimeFrame{}, fmt.Errorf("bad timeframe %q", s)
	}
}
