package message

import "time"

// TimeStamp is the UTC second at which serve queued a task.
type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.UTC().Format(time.DateTime))
}

// Age is how long ago ts was taken; zero when ts does not parse.
func (ts TimeStamp) Age(now time.Time) time.Duration {
	t, err := time.ParseInLocation(time.DateTime, string(ts), time.UTC)
	if err != nil {
		return 0
	}
	return now.Sub(t)
}
