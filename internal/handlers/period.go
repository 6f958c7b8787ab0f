package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vitawin/referral-engine/internal/domain"
	"github.com/vitawin/referral-engine/internal/mlm"
)

const dateLayout = "2006-01-02"

// Именованные периоды отчета
const (
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
	PeriodAllTime = "all_time"
)

var errInvalidQuery = errors.New("invalid query parameters")

// parseReportOptions читает параметры отчета: from, to, period и maxDepth.
// Явные from/to имеют приоритет над period.
func parseReportOptions(r *http.Request, now time.Time) (domain.ReportOptions, error) {
	q := r.URL.Query()
	var opts domain.ReportOptions

	if p := q.Get("period"); p != "" {
		from, err := periodStart(p, now)
		if err != nil {
			return opts, err
		}
		opts.Period.From = from
	}

	if v := q.Get("from"); v != "" {
		from, err := parseBound(v, false)
		if err != nil {
			return opts, fmt.Errorf("%w: from: %v", errInvalidQuery, err)
		}
		opts.Period.From = &from
	}

	if v := q.Get("to"); v != "" {
		to, err := parseBound(v, true)
		if err != nil {
			return opts, fmt.Errorf("%w: to: %v", errInvalidQuery, err)
		}
		opts.Period.To = &to
	}

	if opts.Period.From != nil && opts.Period.To != nil && opts.Period.From.After(*opts.Period.To) {
		return opts, fmt.Errorf("%w: from is after to", errInvalidQuery)
	}

	if v := q.Get("maxDepth"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil || depth < 1 || depth > mlm.BreakdownLevels {
			return opts, fmt.Errorf("%w: maxDepth must be between 1 and %d", errInvalidQuery, mlm.BreakdownLevels)
		}
		opts.MaxDepth = depth
	}

	return opts, nil
}

// periodStart возвращает начало именованного периода в часовом поясе now
func periodStart(period string, now time.Time) (*time.Time, error) {
	var start time.Time
	switch period {
	case PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodQuarter:
		month := time.Month((int(now.Month())-1)/3*3 + 1)
		start = time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case PeriodAllTime:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown period %q", errInvalidQuery, period)
	}
	return &start, nil
}

// parseBound принимает RFC3339 или дату. Дата в верхней границе
// означает конец дня.
func parseBound(v string, end bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}

	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, err
	}
	if end {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
