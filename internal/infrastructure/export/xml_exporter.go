package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// NamespaceRoster espacio de nombres del padrón exportado.
const NamespaceRoster = "urn:directorio-escolar:padron:1"

// XMLExporter exporta el padrón en XML. El Digest del artefacto es el SHA-256 en
// base64 de la forma canónica (C14N) del documento, igual para contenidos iguales.
type XMLExporter struct {
	opts Options
}

var _ appdir.Exporter = (*XMLExporter)(nil)

func NewXMLExporter(opts Options) *XMLExporter {
	return &XMLExporter{opts: opts}
}

func (e *XMLExporter) Export(ctx context.Context, people []entity.Person) (appdir.Artifact, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("Padron")
	root.CreateAttr("xmlns", NamespaceRoster)
	root.CreateAttr("total", strconv.Itoa(len(people)))

	cols := e.opts.columns()
	for _, p := range people {
		if err := ctx.Err(); err != nil {
			return appdir.Artifact{}, err
		}
		u := root.CreateElement("Usuario")
		u.CreateAttr("tipo", p.Kind.String())
		for _, c := range cols {
			u.CreateElement(c.tag).SetText(c.value(p, e.opts.EmailDomain))
		}
		if len(p.Tags) > 0 {
			tags := u.CreateElement("etiquetas")
			for _, t := range p.Tags {
				tags.CreateElement("etiqueta").SetText(t)
			}
		}
	}

	doc.Indent(2)
	body, err := doc.WriteToBytes()
	if err != nil {
		return appdir.Artifact{}, fmt.Errorf("export xml: %w", err)
	}
	digest, err := Digest(body)
	if err != nil {
		return appdir.Artifact{}, err
	}

	return appdir.Artifact{
		Filename:    e.opts.filename(".xml"),
		ContentType: "application/xml",
		Data:        body,
		Digest:      digest,
	}, nil
}

// Digest SHA-256 (base64) de la forma canónica de un documento XML.
func Digest(data []byte) (string, error) {
	canonical, err := canonicalize(data)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	out, err := c14n.Canonicalize(dec)
	if err != nil {
		return nil, fmt.Errorf("export xml: canonicalizar: %w", err)
	}
	return out, nil
}
