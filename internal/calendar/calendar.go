// Package calendar 固定年历的寻址计算
// 每月划分为5个从1号起算的固定7天块，与真实星期对齐无关
package calendar

import (
	"fmt"
	"math"
	"time"
)

// MonthNames 固定的12个月份显示名
var MonthNames = []string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// DayNames 周日起始的7个星期显示名
var DayNames = []string{
	"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

// 每月的周块数和每周天数
const (
	WeeksPerMonth = 5
	DaysPerWeek   = 7
)

// ValidMonth 月份索引是否有效（0-11）
func ValidMonth(month int) bool {
	return month >= 0 && month < len(MonthNames)
}

// ValidWeek 周索引是否有效（1-5）
func ValidWeek(week int) bool {
	return week >= 1 && week <= WeeksPerMonth
}

// MonthName 月份显示名
func MonthName(month int) string {
	if !ValidMonth(month) {
		return ""
	}
	return MonthNames[month]
}

// DayEntry 周视图中的单日条目
type DayEntry struct {
	Name string // 星期显示名
	Date string // "日/月" 格式的日期
}

// WeekDays 计算指定周块的7个日期条目
// 日期为 1+(week-1)*7+i 号，超出月长时按标准日历规则
// 顺延到下个月，这是固定周块模型的预期行为
func WeekDays(year, month, week int) []DayEntry {
	startOffset := (week - 1) * DaysPerWeek

	entries := make([]DayEntry, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		date := time.Date(year, time.Month(month+1), 1+startOffset+i, 0, 0, 0, 0, time.UTC)
		entries[i] = DayEntry{
			Name: DayNames[i],
			Date: fmt.Sprintf("%d/%d", date.Day(), int(date.Month())),
		}
	}
	return entries
}

// Progress 计算周完成度百分比
// 没有任务时返回0而不是除零
func Progress(done, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
