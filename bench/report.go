package bench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pyihe/mapbench/config"
	"github.com/pyihe/mapbench/math"
)

type Reporter interface {
	// Report 输出一个容器的测试结果
	Report(label string, res Result)
	// Flush 所有容器测试完毕后调用
	Flush()
}

// NewReporter 根据format创建Reporter，未知的format使用文本格式
func NewReporter(format string, w io.Writer) Reporter {
	if format == config.ReportTable {
		return NewTableReporter(w)
	}
	return &TextReporter{w: w}
}

// TextReporter 每个容器输出一段结果
type TextReporter struct {
	w io.Writer
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) Report(label string, res Result) {
	fmt.Fprintf(r.w, "%s\nTotal insert time: %dµs\nAvg insert time: %sµs\nIteration time: %dµs\n",
		label, res.TotalInsertMicros, formatAvg(res.AvgInsertMicros), res.IterationMicros)
}

func (r *TextReporter) Flush() {}

// formatAvg 保留6位有效数字
func formatAvg(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// TableReporter 缓存所有结果，Flush时输出为一张表格
type TableReporter struct {
	tw table.Writer
}

func NewTableReporter(w io.Writer) *TableReporter {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"container", "total insert (µs)", "avg insert (µs)", "iteration (µs)", "elements"})
	return &TableReporter{tw: tw}
}

func (r *TableReporter) Report(label string, res Result) {
	r.tw.AppendRow(table.Row{
		label,
		res.TotalInsertMicros,
		math.Round(res.AvgInsertMicros, 3),
		res.IterationMicros,
		res.Elements,
	})
}

func (r *TableReporter) Flush() {
	r.tw.Render()
}
