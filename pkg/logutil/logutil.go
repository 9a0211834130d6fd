package logutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/tidwall/pretty"
)

// 定义日志级别
const (
	DEBUG = iota // 0
	INFO         // 1
	WARN         // 2
	ERROR        // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]int{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

var (
	mu           sync.Mutex
	logger       *log.Logger
	logFile      *os.File
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，output 为 "stdout" 或者日志文件路径（追加写）
func InitLogger(output string, level int) error {
	mu.Lock()
	defer mu.Unlock()

	if output == "stdout" {
		logFile = os.Stdout
	} else {
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("无法创建日志文件: %w", err)
		}
		logFile = f
	}
	logger = log.New(logFile, "", log.LstdFlags)
	currentLevel = level
	return nil
}

// SetOutput 把日志重定向到任意 writer，测试里用来捕获输出
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

// 设置日志级别
func SetLogLevel(level int) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

// Enabled 判断某个级别当前是否会输出，调用方可以用它跳过昂贵的参数构造
func Enabled(level int) bool {
	mu.Lock()
	defer mu.Unlock()
	return level >= currentLevel
}

// formatArg 切片和字典格式化成缩进的 JSON，其他类型原样返回
func formatArg(arg any) any {
	v := reflect.ValueOf(arg)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Map {
		return arg
	}
	data, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("无法格式化: %v", err)
	}
	return strings.TrimRight(string(pretty.Pretty(data)), "\n")
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
func logMessage(level int, msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level < currentLevel { // 值越小打印得越多
		return
	}
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags) // 默认输出到控制台
	}

	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	file = filepath.Base(file)

	formattedArgs := make([]any, 0, len(args))
	for _, arg := range args {
		formattedArgs = append(formattedArgs, formatArg(arg))
	}

	logger.Printf("[%s:%d] %s", file, line, fmt.Sprintf(msg, formattedArgs...))
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志，附带当前 goroutine 的调用堆栈
func Error(msg string, args ...any) {
	size := 1024
	for {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)
		if n < size {
			// 堆栈作为参数传入，避免里面的 % 被当成格式化字符
			logMessage(ERROR, "[ERR] "+msg+"\n调用堆栈:\n%s", append(args, string(buf[:n]))...)
			return
		}
		// 倍增策略
		size *= 2
	}
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil && logFile != os.Stdout {
		err := logFile.Close()
		logFile = nil
		logger = nil
		return err
	}
	return nil
}
