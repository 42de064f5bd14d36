package inits

import (
	"fmt"
	"go.uber.org/zap"
)

// Logger 调试模式下使用易读的开发格式，否则输出 JSON ； name 用于区分不同的程序
func Logger(debugMode bool, name string) (l *zap.Logger, err error) {
	if debugMode {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if name != "" {
		l = l.Named(name)
	}

	return l, nil
}
