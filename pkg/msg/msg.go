package msg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	mutex    sync.RWMutex
	messages = make(map[string]string)
)

// init loads messages from YAML when the catalogue file is present.
func init() {
	var value, ok = os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	if _, err := os.Stat(value); err != nil {
		return
	}
	if err := Init(value); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}
}

// Init merges the messages of the given YAML file into the catalogue.
func Init(filepath string) error {
	reader := viper.New()
	reader.SetConfigFile(filepath)
	reader.SetConfigType("yml")

	if err := reader.ReadInConfig(); err != nil {
		return err
	}

	mutex.Lock()
	defer mutex.Unlock()
	for _, key := range reader.AllKeys() {
		if value, ok := reader.Get(key).(string); ok {
			messages[key] = value
		}
	}
	return nil
}

// GetMessage returns the message registered under key with {0}, {1}, ...
// replaced by args. Non-primitive args are rendered as JSON.
func GetMessage(key string, args ...interface{}) string {
	mutex.RLock()
	message, exists := messages[key]
	mutex.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := "{" + strconv.Itoa(i) + "}"
		message = strings.ReplaceAll(message, placeholder, argToString(arg))
	}

	return message
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}

	switch reflect.TypeOf(arg).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return fmt.Sprint(arg)
	}

	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}

	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}
