package graphml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/prop"
)

// Read consumes one GraphML document from r and constructs its graph by
// driving m. When storeIDs is true, the original node and edge identities
// are recorded through the mutator as the reserved string properties
// prop.VertexIDName and prop.EdgeIDName.
//
// The pass is streaming: declarations build a key symbol table, nodes
// register their identities, and data elements dispatch typed values as
// they appear. Edges resolve immediately under parse.order="nodesfirst"
// (an endpoint missing at that moment is a schema violation); without the
// flag, edges buffer with their data and resolve when the graph closes.
//
// Any failure aborts the parse and surfaces as a *Error carrying the
// taxonomy kind and the document position. Mutations applied before the
// failure remain in the host; the caller discards partial results.
// Complexity: O(bytes + V + E + data entries)
func Read(r io.Reader, m Mutator, storeIDs bool) error {
	lr := newLineReader(r)
	p := &parser{
		dec:      xml.NewDecoder(lr),
		lr:       lr,
		m:        m,
		storeIDs: storeIDs,
		keys:     make(map[string]*keyDecl),
		vertices: make(map[string]any),
	}

	return p.run()
}

// Domain bits of a key declaration; for="all" sets all three.
const (
	domGraph = 1 << iota
	domNode
	domEdge
)

// keyDecl is one row of the reader's symbol table.
type keyDecl struct {
	id       string
	name     string
	typeName string
	kind     attr.Kind
	domains  uint8
	def      string
	hasDef   bool
}

// forDomain reports whether the key is registered for d.
func (k *keyDecl) forDomain(d prop.Domain) bool {
	switch d {
	case prop.DomainGraph:
		return k.domains&domGraph != 0
	case prop.DomainVertex:
		return k.domains&domNode != 0
	case prop.DomainEdge:
		return k.domains&domEdge != 0
	default:
		return false
	}
}

// dataEntry is one captured <data> element: its declaration, verbatim text,
// and position for error reports.
type dataEntry struct {
	decl *keyDecl
	text string
	line int
	col  int
}

// pendingEdge buffers an <edge> whose endpoints may not be declared yet.
type pendingEdge struct {
	source string
	target string
	id     string
	hasID  bool
	data   []dataEntry
	line   int
	col    int
}

// parser holds the single-pass state. All tables live for one Read call.
type parser struct {
	dec      *xml.Decoder
	lr       *lineReader
	m        Mutator
	storeIDs bool

	keys    map[string]*keyDecl
	keyList []*keyDecl

	vertices   map[string]any
	nodesFirst bool
	pending    []pendingEdge
}

// run walks prolog, declarations, graph, and epilog.
func (p *parser) run() error {
	// 1. Prolog: skip to the root element.
	for {
		tok, err := p.token()
		if err != nil {
			if err == io.EOF {
				return errf(XMLWellFormedness, "unexpected end of stream before <graphml>")
			}

			return err
		}
		if done, err := p.prologToken(tok); err != nil {
			return err
		} else if done {
			break
		}
	}

	// 2. Declarations, then exactly one graph.
	sawGraph := false
	for {
		tok, err := p.token()
		if err != nil {
			if err == io.EOF {
				return errf(XMLWellFormedness, "unexpected end of stream inside <graphml>")
			}

			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "key":
				if sawGraph {
					return p.fail(SchemaViolation, "key declaration after <graph>")
				}
				if err := p.parseKey(t); err != nil {
					return err
				}
			case "graph":
				if sawGraph {
					return p.fail(SchemaViolation, "multiple <graph> elements")
				}
				sawGraph = true
				if err := p.parseGraph(t); err != nil {
					return err
				}
			default:
				return p.fail(SchemaViolation, "unexpected element <%s> in <graphml>", t.Name.Local)
			}
		case xml.EndElement:
			// </graphml>
			if !sawGraph {
				return p.fail(SchemaViolation, "document has no <graph> element")
			}

			return p.epilog()
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return p.fail(SchemaViolation, "stray text inside <graphml>")
			}
		}
	}
}

// prologToken handles one token before the root element; done reports the
// root was reached.
func (p *parser) prologToken(tok xml.Token) (done bool, err error) {
	switch t := tok.(type) {
	case xml.StartElement:
		if t.Name.Local != "graphml" {
			return false, p.fail(SchemaViolation, "root element is <%s>, want <graphml>", t.Name.Local)
		}

		return true, nil
	case xml.CharData:
		if strings.TrimSpace(string(t)) != "" {
			return false, p.fail(XMLWellFormedness, "text before root element")
		}

		return false, nil
	default:
		// processing instructions, comments, directives
		return false, nil
	}
}

// epilog drains trailing whitespace and comments after </graphml>.
func (p *parser) epilog() error {
	for {
		tok, err := p.token()
		if err != nil {
			if err == io.EOF {
				return nil
			}

			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return p.fail(XMLWellFormedness, "text after </graphml>")
			}
		case xml.StartElement:
			return p.fail(XMLWellFormedness, "content after </graphml>")
		}
	}
}

// parseKey registers one <key> declaration and captures its optional
// <default> child.
func (p *parser) parseKey(start xml.StartElement) error {
	var id, forAttr, name, typeName string
	var hasID, hasFor, hasName, hasType bool
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "id":
			id, hasID = a.Value, true
		case "for":
			forAttr, hasFor = a.Value, true
		case "attr.name":
			name, hasName = a.Value, true
		case "attr.type":
			typeName, hasType = a.Value, true
		}
	}
	switch {
	case !hasID:
		return p.fail(SchemaViolation, "<key> without id attribute")
	case !hasFor:
		return p.fail(SchemaViolation, "<key> %q without for attribute", id)
	case !hasName:
		return p.fail(SchemaViolation, "<key> %q without attr.name attribute", id)
	case !hasType:
		return p.fail(SchemaViolation, "<key> %q without attr.type attribute", id)
	}

	var domains uint8
	switch forAttr {
	case "graph":
		domains = domGraph
	case "node":
		domains = domNode
	case "edge":
		domains = domEdge
	case "all":
		domains = domGraph | domNode | domEdge
	default:
		return p.fail(SchemaViolation, "<key> %q has for=%q, want graph, node, edge, or all", id, forAttr)
	}

	kind, ok := attr.KindOf(typeName)
	if !ok {
		return p.fail(TypeUnknown, "unrecognized type %q for key %q", typeName, name)
	}

	if _, dup := p.keys[id]; dup {
		return p.fail(SchemaViolation, "duplicate key id %q", id)
	}

	decl := &keyDecl{id: id, name: name, typeName: typeName, kind: kind, domains: domains}

	// Children: at most one <default>; other children are tolerated and
	// skipped (descriptions and similar).
	for {
		tok, err := p.token()
		if err != nil {
			if err == io.EOF {
				return errf(XMLWellFormedness, "unexpected end of stream inside <key>")
			}

			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "default" {
				text, err := p.collectText("default")
				if err != nil {
					return err
				}
				decl.def, decl.hasDef = text, true
			} else if err := p.dec.Skip(); err != nil {
				return p.classify(err)
			}
		case xml.EndElement:
			p.keys[id] = decl
			p.keyList = append(p.keyList, decl)

			return nil
		}
	}
}

// parseGraph validates the graph attributes, checks directedness against
// the host, applies graph-level defaults, and walks the body.
func (p *parser) parseGraph(start xml.StartElement) error {
	var edgedefault, order string
	var hasDefault bool
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "edgedefault":
			edgedefault, hasDefault = a.Value, true
		case "parse.order":
			order = a.Value
		}
	}
	if !hasDefault {
		return p.fail(SchemaViolation, "<graph> without edgedefault attribute")
	}

	var docDirected bool
	switch edgedefault {
	case "directed":
		docDirected = true
	case "undirected":
		docDirected = false
	default:
		return p.fail(SchemaViolation, "edgedefault=%q, want directed or undirected", edgedefault)
	}
	if docDirected != p.m.Directed() {
		return p.fail(SchemaViolation, "edgedefault=%q does not match host directedness", edgedefault)
	}

	switch order {
	case "nodesfirst":
		p.nodesFirst = true
	case "", "free":
		p.nodesFirst = false
	default:
		return p.fail(SchemaViolation, "parse.order=%q, want nodesfirst or free", order)
	}

	gl, gc := p.pos()
	err := p.applyDefaults(prop.DomainGraph, gl, gc, func(name, text, tn string) error {
		return p.m.SetGraphProperty(name, text, tn)
	})
	if err != nil {
		return err
	}

	for {
		tok, err := p.token()
		if err != nil {
			if err == io.EOF {
				return errf(XMLWellFormedness, "unexpected end of stream inside <graph>")
			}

			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "node":
				if err := p.parseNode(t); err != nil {
					return err
				}
			case "edge":
				if err := p.parseEdge(t); err != nil {
					return err
				}
			case "data":
				entry, err := p.parseData(t, prop.DomainGraph)
				if err != nil {
					return err
				}
				err = p.m.SetGraphProperty(entry.decl.name, entry.text, entry.decl.typeName)
				if err = p.dispatch(err, entry.line, entry.col); err != nil {
					return err
				}
			default:
				return p.fail(SchemaViolation, "unexpected element <%s> in <graph>", t.Name.Local)
			}
		case xml.EndElement:
			// </graph>: resolve buffered edges.
			return p.flushEdges()
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return p.fail(SchemaViolation, "stray text inside <graph>")
			}
		}
	}
}

// parseNode adds one vertex, records its identity, applies node defaults,
// and dispatches its data.
func (p *parser) parseNode(start xml.StartElement) error {
	var id string
	var hasID bool
	for _, a := range start.Attr {
		if a.Name.Local == "id" {
			id, hasID = a.Value, true
		}
	}
	if !hasID {
		return p.fail(SchemaViolation, "<node> without id attribute")
	}
	if _, dup := p.vertices[id]; dup {
		return p.fail(SchemaViolation, "duplicate node id %q", id)
	}

	nl, nc := p.pos()
	h := p.m.AddVertex()
	p.vertices[id] = h

	if p.storeIDs {
		err := p.m.SetVertexProperty(prop.VertexIDName, h, id, "string")
		if err = p.dispatch(err, nl, nc); err != nil {
			return err
		}
	}
	err := p.applyDefaults(prop.DomainVertex, nl, nc, func(name, text, tn string) error {
		return p.m.SetVertexProperty(name, h, text, tn)
	})
	if err != nil {
		return err
	}

	for {
		tok, err := p.token()
		if err != nil {
			if err == io.EOF {
				return errf(XMLWellFormedness, "unexpected end of stream inside <node>")
			}

			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "data" {
				return p.fail(SchemaViolation, "unexpected element <%s> in <node>", t.Name.Local)
			}
			entry, err := p.parseData(t, prop.DomainVertex)
			if err != nil {
				return err
			}
			err = p.m.SetVertexProperty(entry.decl.name, h, entry.text, entry.decl.typeName)
			if err = p.dispatch(err, entry.line, entry.col); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return p.fail(SchemaViolation, "stray text inside <node>")
			}
		}
	}
}

// parseEdge handles one <edge>. Under nodesfirst both endpoints must
// already exist and the edge applies immediately; otherwise the edge and
// its data buffer until the graph closes.
func (p *parser) parseEdge(start xml.StartElement) error {
	var source, target, id string
	var hasSource, hasTarget, hasID bool
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "source":
			source, hasSource = a.Value, true
		case "target":
			target, hasTarget = a.Value, true
		case "id":
			id, hasID = a.Value, true
		}
	}
	if !hasSource {
		return p.fail(SchemaViolation, "<edge> without source attribute")
	}
	if !hasTarget {
		return p.fail(SchemaViolation, "<edge> without target attribute")
	}

	el, ec := p.pos()

	if !p.nodesFirst {
		pe := pendingEdge{source: source, target: target, id: id, hasID: hasID, line: el, col: ec}
		for {
			tok, err := p.token()
			if err != nil {
				if err == io.EOF {
					return errf(XMLWellFormedness, "unexpected end of stream inside <edge>")
				}

				return err
			}
			switch t := tok.(type) {
			case xml.StartElement:
				if t.Name.Local != "data" {
					return p.fail(SchemaViolation, "unexpected element <%s> in <edge>", t.Name.Local)
				}
				entry, err := p.parseData(t, prop.DomainEdge)
				if err != nil {
					return err
				}
				pe.data = append(pe.data, entry)
			case xml.EndElement:
				p.pending = append(p.pending, pe)

				return nil
			case xml.CharData:
				if strings.TrimSpace(string(t)) != "" {
					return p.fail(SchemaViolation, "stray text inside <edge>")
				}
			}
		}
	}

	sh, ok := p.vertices[source]
	if !ok {
		return p.fail(SchemaViolation, "unknown source %q in <edge>", source)
	}
	th, ok := p.vertices[target]
	if !ok {
		return p.fail(SchemaViolation, "unknown target %q in <edge>", target)
	}

	eh, inserted := p.m.AddEdge(sh, th)
	if inserted {
		if p.storeIDs && hasID {
			err := p.m.SetEdgeProperty(prop.EdgeIDName, eh, id, "string")
			if err = p.dispatch(err, el, ec); err != nil {
				return err
			}
		}
		err := p.applyDefaults(prop.DomainEdge, el, ec, func(name, text, tn string) error {
			return p.m.SetEdgeProperty(name, eh, text, tn)
		})
		if err != nil {
			return err
		}
	}

	for {
		tok, err := p.token()
		if err != nil {
			if err == io.EOF {
				return errf(XMLWellFormedness, "unexpected end of stream inside <edge>")
			}

			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "data" {
				return p.fail(SchemaViolation, "unexpected element <%s> in <edge>", t.Name.Local)
			}
			entry, err := p.parseData(t, prop.DomainEdge)
			if err != nil {
				return err
			}
			// data of a rejected edge is validated but discarded
			if inserted {
				err = p.m.SetEdgeProperty(entry.decl.name, eh, entry.text, entry.decl.typeName)
				if err = p.dispatch(err, entry.line, entry.col); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return p.fail(SchemaViolation, "stray text inside <edge>")
			}
		}
	}
}

// flushEdges resolves buffered edges in document order.
func (p *parser) flushEdges() error {
	for i := range p.pending {
		pe := &p.pending[i]
		sh, ok := p.vertices[pe.source]
		if !ok {
			return &Error{Kind: SchemaViolation, Line: pe.line, Col: pe.col,
				Msg: fmt.Sprintf("unresolved source %q in <edge>", pe.source)}
		}
		th, ok := p.vertices[pe.target]
		if !ok {
			return &Error{Kind: SchemaViolation, Line: pe.line, Col: pe.col,
				Msg: fmt.Sprintf("unresolved target %q in <edge>", pe.target)}
		}

		eh, inserted := p.m.AddEdge(sh, th)
		if !inserted {
			continue
		}
		if p.storeIDs && pe.hasID {
			err := p.m.SetEdgeProperty(prop.EdgeIDName, eh, pe.id, "string")
			if err = p.dispatch(err, pe.line, pe.col); err != nil {
				return err
			}
		}
		err := p.applyDefaults(prop.DomainEdge, pe.line, pe.col, func(name, text, tn string) error {
			return p.m.SetEdgeProperty(name, eh, text, tn)
		})
		if err != nil {
			return err
		}
		for _, entry := range pe.data {
			err := p.m.SetEdgeProperty(entry.decl.name, eh, entry.text, entry.decl.typeName)
			if err = p.dispatch(err, entry.line, entry.col); err != nil {
				return err
			}
		}
	}
	p.pending = nil

	return nil
}

// parseData validates one <data> element against the symbol table and
// collects its text. The value is not parsed here; dispatch through the
// mutator decides that.
func (p *parser) parseData(start xml.StartElement, domain prop.Domain) (dataEntry, error) {
	var key string
	var hasKey bool
	for _, a := range start.Attr {
		if a.Name.Local == "key" {
			key, hasKey = a.Value, true
		}
	}
	if !hasKey {
		return dataEntry{}, p.fail(SchemaViolation, "<data> without key attribute")
	}

	decl, ok := p.keys[key]
	if !ok {
		return dataEntry{}, p.fail(SchemaViolation, "reference to undeclared key %q", key)
	}
	if !decl.forDomain(domain) {
		return dataEntry{}, p.fail(SchemaViolation, "key %q is not declared for %s data", key, domain)
	}

	line, col := p.pos()
	text, err := p.collectText("data")
	if err != nil {
		return dataEntry{}, err
	}

	return dataEntry{decl: decl, text: text, line: line, col: col}, nil
}

// collectText gathers the character data of the current element up to its
// end tag. Nested elements are not part of the subset.
func (p *parser) collectText(element string) (string, error) {
	var b strings.Builder
	for {
		tok, err := p.token()
		if err != nil {
			if err == io.EOF {
				return "", errf(XMLWellFormedness, "unexpected end of stream inside <%s>", element)
			}

			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			return b.String(), nil
		case xml.StartElement:
			return "", p.fail(SchemaViolation, "unexpected element <%s> in <%s>", t.Name.Local, element)
		}
	}
}

// applyDefaults dispatches every defaulted key of one domain through set.
func (p *parser) applyDefaults(d prop.Domain, line, col int, set func(name, text, typeName string) error) error {
	for _, k := range p.keyList {
		if !k.hasDef || !k.forDomain(d) {
			continue
		}
		if err := p.dispatch(set(k.name, k.def, k.typeName), line, col); err != nil {
			return err
		}
	}

	return nil
}

// token fetches the next XML token, classifying decoder failures.
func (p *parser) token() (xml.Token, error) {
	tok, err := p.dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}

		return nil, p.classify(err)
	}

	return tok, nil
}

// classify sorts a decoder error into the taxonomy: source stream failures
// are IO, everything else is a well-formedness problem.
func (p *parser) classify(err error) error {
	if p.lr.err != nil {
		return &Error{Kind: IOFailure, Msg: p.lr.err.Error(), Err: p.lr.err}
	}
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return &Error{Kind: XMLWellFormedness, Msg: se.Msg, Line: se.Line, Err: se}
	}

	return &Error{Kind: XMLWellFormedness, Msg: err.Error(), Err: err}
}

// dispatch attaches a position to a mutator failure. Structured errors
// keep their kind; anything else is a host rejection.
func (p *parser) dispatch(err error, line, col int) error {
	if err == nil {
		return nil
	}
	var ge *Error
	if errors.As(err, &ge) {
		if ge.Line == 0 {
			ge.Line, ge.Col = line, col
		}

		return ge
	}

	return &Error{Kind: HostReject, Msg: err.Error(), Line: line, Col: col, Err: err}
}

// fail builds an Error at the current decoder position.
func (p *parser) fail(kind ErrKind, format string, args ...any) error {
	line, col := p.pos()

	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: line, Col: col}
}

// pos reports the current decoder position.
func (p *parser) pos() (int, int) {
	return p.lr.pos(p.dec.InputOffset())
}
