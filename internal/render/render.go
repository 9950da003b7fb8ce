package render

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gopinath/resume-tailor/internal/emphasis"
	"github.com/gopinath/resume-tailor/internal/types"
)

// Options configures one render run.
type Options struct {
	// OutputDir receives the payload JSON and every rendered document.
	OutputDir string
	// BaseName is the filename stem, e.g. "resume_acme" -> resume_acme.html.
	BaseName string
	// DOCXTemplate is the path to a DOCX template; empty disables DOCX output.
	DOCXTemplate string
	// External, when non-nil, is run in addition to the built-in renderers.
	External *ExternalRenderer
	// DocType is one of DocTypeResume, DocTypeCV (passed to External).
	DocType string
}

// Render writes the payload JSON and renders the configured document formats
// in parallel. It returns the paths of everything written, in a stable order.
func Render(ctx context.Context, payload *types.RenderPayload, annotator *emphasis.Annotator, opts Options) ([]string, error) {
	payloadPath := filepath.Join(opts.OutputDir, opts.BaseName+".json")
	if err := WritePayload(payload, payloadPath); err != nil {
		return nil, err
	}

	htmlPath := filepath.Join(opts.OutputDir, opts.BaseName+".html")
	docxPath := filepath.Join(opts.OutputDir, opts.BaseName+".docx")
	extPath := filepath.Join(opts.OutputDir, opts.BaseName+".pdf")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return RenderHTML(payload, annotator, htmlPath)
	})

	if opts.DOCXTemplate != "" {
		g.Go(func() error {
			return RenderDOCX(payload, opts.DOCXTemplate, docxPath)
		})
	}

	if opts.External != nil {
		docType := opts.DocType
		if docType == "" {
			docType = DocTypeResume
		}
		g.Go(func() error {
			return opts.External.Render(ctx, docType, payloadPath, extPath)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := []string{payloadPath, htmlPath}
	if opts.DOCXTemplate != "" {
		paths = append(paths, docxPath)
	}
	if opts.External != nil {
		paths = append(paths, extPath)
	}
	return paths, nil
}

// RenderLetter writes the letter payload JSON and renders the cover letter
// formats in parallel, mirroring Render. The external renderer runs with
// DocTypeCoverLetter regardless of opts.DocType.
func RenderLetter(ctx context.Context, doc *LetterDoc, opts Options) ([]string, error) {
	payloadPath := filepath.Join(opts.OutputDir, opts.BaseName+".json")
	if err := WriteLetterPayload(doc, payloadPath); err != nil {
		return nil, err
	}

	htmlPath := filepath.Join(opts.OutputDir, opts.BaseName+".html")
	docxPath := filepath.Join(opts.OutputDir, opts.BaseName+".docx")
	extPath := filepath.Join(opts.OutputDir, opts.BaseName+".pdf")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return RenderLetterHTML(doc, htmlPath)
	})

	if opts.DOCXTemplate != "" {
		g.Go(func() error {
			return RenderLetterDOCX(doc, opts.DOCXTemplate, docxPath)
		})
	}

	if opts.External != nil {
		g.Go(func() error {
			return opts.External.Render(ctx, DocTypeCoverLetter, payloadPath, extPath)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := []string{payloadPath, htmlPath}
	if opts.DOCXTemplate != "" {
		paths = append(paths, docxPath)
	}
	if opts.External != nil {
		paths = append(paths, extPath)
	}
	return paths, nil
}
