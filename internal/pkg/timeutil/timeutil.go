package timeutil

import "time"

func NowUnix() int64 {
	return time.Now().Unix()
}

func Format(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).Local().Format("2006-01-02 15:04")
}
