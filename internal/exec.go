package internal

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

const (
	stackSize = 4096
)

// ExecWithRecover 执行函数f，并捕获异常
// 发生panic时记录堆栈，并以error的形式返回panic的值
func ExecWithRecover(logger *zap.Logger, f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, stackSize)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("recovered: %v", r)
			logger.Error("panic recovered", zap.Any("value", r), zap.ByteString("stack", buf[:n]))
		}
	}()

	f()
	return nil
}
