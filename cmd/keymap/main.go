package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/suparena/keymap"
	"github.com/suparena/keymap/config"
	"github.com/suparena/keymap/document"
	"github.com/suparena/keymap/mapping"
	"github.com/suparena/keymap/registry"
	"github.com/suparena/keymap/schema"
)

// mapView is the printed form of a resolved map.
type mapView struct {
	OwnerType    string            `yaml:"ownerType"`
	Attributes   map[string]string `yaml:"attributes"`
	Keys         map[string]string `yaml:"keys"`
	Dependencies map[string]string `yaml:"dependencies,omitempty"`
}

func describe(m *mapping.Map) mapView {
	view := mapView{
		OwnerType:  m.OwnerType(),
		Attributes: m.AttributeIndex(),
		Keys:       m.KeyIndex(),
	}
	for attribute, child := range m.Dependencies() {
		if view.Dependencies == nil {
			view.Dependencies = make(map[string]string)
		}
		view.Dependencies[attribute] = child.OwnerType()
	}
	return view
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("keymap", flag.ContinueOnError)
	versionFlag := flags.Bool("version", false, "Show version information")
	vFlag := flags.Bool("v", false, "Show version information (short)")
	envFile := flags.String("env", "", "Env file to load (default .env)")
	schemaPath := flags.String("schema", "", "YAML schema (default $KEYMAP_SCHEMA)")
	typeName := flags.String("type", "", "Only print the map of this type")
	decodePath := flags.String("decode", "", "JSON document to translate to attributes of -type")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *versionFlag || *vFlag {
		info := keymap.GetVersionInfo()
		fmt.Fprintf(stdout, "keymap version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		return nil
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	if *schemaPath != "" {
		cfg.SchemaPath = *schemaPath
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := schema.LoadFile(cfg.SchemaPath)
	if err != nil {
		return err
	}
	reg := registry.New(registry.WithLogger(logger))
	if err := s.Register(reg); err != nil {
		return err
	}
	logger.Info("schema loaded", zap.String("path", cfg.SchemaPath), zap.Strings("types", reg.Types()))

	if *decodePath != "" {
		if *typeName == "" {
			return fmt.Errorf("-decode requires -type")
		}
		m, err := reg.Resolve(*typeName)
		if err != nil {
			return err
		}
		tr := document.NewTranslator(document.WithLogger(logger), document.WithStrict(cfg.Strict))
		return decode(tr, m, *decodePath, stdout)
	}

	types := reg.Types()
	if *typeName != "" {
		types = []string{*typeName}
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	for _, t := range types {
		m, err := reg.Resolve(t)
		if err != nil {
			return err
		}
		if err := enc.Encode(describe(m)); err != nil {
			return err
		}
	}
	return enc.Close()
}

// decode reads a JSON document keyed by document keys and prints it keyed by
// attribute names.
func decode(tr *document.Translator, m *mapping.Map, path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	item, err := attributevalue.MarshalMap(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	attrs, err := tr.Decode(m, item)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(attrs); err != nil {
		return err
	}
	return enc.Close()
}
