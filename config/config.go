package config

import (
	"bufio"
	"io"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"chaindict/lib/logger"

	"github.com/pkg/errors"
)

const (
	DefaultInitialCapacity = 16
	DefaultLoadFactor      = 0.75
	DefaultLogLevel        = "info"
)

var ErrInvalidProperty = errors.New("invalid property")

type DictProperties struct {
	InitialCapacity int     `cfg:"initial-capacity"`
	LoadFactor      float64 `cfg:"load-factor"`
	LogLevel        string  `cfg:"log-level"`
}

var Properties *DictProperties

var log = logger.WithField("module", "config")

func init() {
	Properties = Defaults()
}

func Defaults() *DictProperties {
	return &DictProperties{
		InitialCapacity: DefaultInitialCapacity,
		LoadFactor:      DefaultLoadFactor,
		LogLevel:        DefaultLogLevel,
	}
}

// SetupConfigProperties 读取配置文件并替换全局 Properties，出错时直接 panic
func SetupConfigProperties(filename string) {
	p, err := LoadProperties(filename)
	if err != nil {
		panic(err)
	}
	Properties = p
}

func LoadProperties(filename string) (*DictProperties, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open config %s", filename)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	p, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", filename)
	}
	log.Infof("loaded properties from %s", filename)
	return p, nil
}

// Parse 读取 "key value" 形式的配置，未出现的项保持默认值
func Parse(reader io.Reader) (*DictProperties, error) {
	res := Defaults()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.TrimSpace(line[pivot+1:])
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan properties")
	}
	if err := fillProperties(res, m); err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *DictProperties) Validate() error {
	if p.InitialCapacity <= 0 {
		return errors.Wrapf(ErrInvalidProperty, "initial-capacity must be positive, got %d", p.InitialCapacity)
	}
	if p.LoadFactor <= 0 || math.IsNaN(p.LoadFactor) || math.IsInf(p.LoadFactor, 0) {
		return errors.Wrapf(ErrInvalidProperty, "load-factor must be a positive finite number, got %v", p.LoadFactor)
	}
	return nil
}

func fillProperties(p *DictProperties, m map[string]string) error {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return errors.Wrapf(ErrInvalidProperty, "%s: %v", key, err)
			}
			fieldVal.SetInt(intV)
		case reflect.Float64:
			floatV, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return errors.Wrapf(ErrInvalidProperty, "%s: %v", key, err)
			}
			fieldVal.SetFloat(floatV)
		default:
			return errors.Errorf("unsupported property kind %s for %s", field.Type.Kind(), key)
		}
	}
	return nil
}
