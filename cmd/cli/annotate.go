package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/honeybbq/serviceast/domain/service"
	"github.com/honeybbq/serviceast/internal/document"
	"github.com/honeybbq/serviceast/pkg/ast"
)

var (
	annotateInputs   []string
	annotateOutput   string
	annotateService  string
	annotateResource string
	annotateKey      string
	annotateValue    string
	annotateDelete   bool
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Add or update an annotation and print the resulting document",
	Long: `Set an annotation on a service, or on one of its resources with
--resource. An existing key keeps its position and takes the new value.
With --delete the key is removed instead.`,
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringSliceVarP(&annotateInputs, "input", "i", nil, "input documents, layered in order (default: stdin)")
	annotateCmd.Flags().StringVarP(&annotateOutput, "output", "o", "", "output path (default: stdout)")
	annotateCmd.Flags().StringVar(&annotateService, "service", "", "service name")
	annotateCmd.Flags().StringVar(&annotateResource, "resource", "", "resource name inside the service")
	annotateCmd.Flags().StringVar(&annotateKey, "key", "", "annotation key")
	annotateCmd.Flags().StringVar(&annotateValue, "value", "", "annotation value")
	annotateCmd.Flags().BoolVar(&annotateDelete, "delete", false, "remove the annotation")
	_ = annotateCmd.MarkFlagRequired("service")
	_ = annotateCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, _ []string) error {
	if annotateKey == "" {
		return errors.New("annotation key must not be empty")
	}
	file, err := loadFile(cmd, annotateInputs)
	if err != nil {
		return err
	}

	svc := file.Service(annotateService)
	if svc == nil {
		return fmt.Errorf("service %q not found", annotateService)
	}
	target, add := svc.Annotations(), svc.AddAnnotation
	if annotateResource != "" {
		res := findResource(svc, annotateResource)
		if res == nil {
			return fmt.Errorf("resource %q not found in service %q", annotateResource, annotateService)
		}
		target, add = res.Annotations(), res.AddAnnotation
	}

	if annotateDelete {
		if !target.Delete(annotateKey) {
			return fmt.Errorf("annotation %q not found", annotateKey)
		}
		logger.Debugf("removed %s from %s/%s", annotateKey, annotateService, annotateResource)
	} else {
		add(annotateKey, annotateValue)
		logger.Debugf("annotated %s/%s with %s=%q", annotateService, annotateResource, annotateKey, annotateValue)
	}

	doc, err := domain.FromAST(file)
	if err != nil {
		return err
	}
	msg, err := doc.ToProto()
	if err != nil {
		return err
	}
	payload, err := document.Marshal(msg, true)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return writeOutput(cmd, annotateOutput, payload)
}

func findResource(svc *ast.ServiceDefinition, name string) *ast.ResourceDefinition {
	for _, res := range svc.ResourceDefinitions() {
		if res != nil && res.Name == name {
			return res
		}
	}
	return nil
}
