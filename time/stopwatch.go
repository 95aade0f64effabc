package gotime

import "time"

// Stopwatch 记录从Start开始经过的时间，只能在单个goroutine中使用
type Stopwatch struct {
	start time.Time
}

// StartStopwatch 以当前时刻为起点创建Stopwatch
func StartStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed 返回从起点到当前时刻经过的时间
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// ElapsedMicros 返回经过的时间，单位微秒，不足1微秒的部分舍去
func (s Stopwatch) ElapsedMicros() uint64 {
	d := s.Elapsed()
	if d < 0 {
		return 0
	}
	return uint64(d / time.Microsecond)
}
