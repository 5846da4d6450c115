// Package erptest provides an in-memory stand-in for the Nordkost ERP
// backend. It implements the collection conventions the SDK targets
// (trailing-slash collections, paginated and legacy bare-array list shapes,
// bearer authentication, schema-validated mutations) so the SDK can be
// exercised end to end without a real backend.
package erptest

import (
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
)

// ResourceOptions configures one mock collection.
type ResourceOptions struct {
	// Schema is a JSON schema source validated against create/update
	// payloads. Empty disables validation.
	Schema string

	// BareArray makes the list endpoint return a legacy bare array instead
	// of the paginated envelope.
	BareArray bool

	// ReadOnly rejects every mutation with 403.
	ReadOnly bool
}

type collection struct {
	opts   ResourceOptions
	schema *gojsonschema.Schema
	nextID int64
	// order keeps insertion order so listings are deterministic.
	order   []int64
	records map[int64]map[string]any
}

// Server is the mock backend. Register resources before serving requests.
type Server struct {
	engine *gin.Engine
	token  string

	mu   sync.Mutex
	data map[string]*collection
}

// NewServer builds an empty mock backend. When token is non-empty, every
// request must carry "Authorization: Bearer <token>"; anything else gets 401.
func NewServer(token string) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		engine: gin.New(),
		token:  token,
		data:   make(map[string]*collection),
	}
	s.engine.Use(s.authenticate)
	return s
}

// Handler exposes the backend as an http.Handler for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Resource registers a collection under /v1/<name>/.
func (s *Server) Resource(name string, opts ResourceOptions) error {
	col := &collection{
		opts:    opts,
		nextID:  1,
		records: make(map[int64]map[string]any),
	}
	if opts.Schema != "" {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(opts.Schema))
		if err != nil {
			return fmt.Errorf("erptest: schema for %s: %w", name, err)
		}
		col.schema = schema
	}

	s.mu.Lock()
	s.data[name] = col
	s.mu.Unlock()

	base := "/v1/" + name + "/"
	s.engine.GET(base, s.handleList(name))
	s.engine.POST(base, s.handleCreate(name))
	s.engine.GET(base+":id", s.handleGet(name))
	s.engine.PUT(base+":id", s.handleUpdate(name))
	s.engine.DELETE(base+":id", s.handleDelete(name))
	return nil
}

// Seed inserts a record directly, bypassing validation, and returns its id.
func (s *Server) Seed(name string, record map[string]any) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.data[name]
	id := col.nextID
	col.nextID++

	stored := make(map[string]any, len(record)+1)
	for k, v := range record {
		stored[k] = v
	}
	stored["id"] = id
	col.records[id] = stored
	col.order = append(col.order, id)
	return id
}

// Count reports how many records the named collection holds.
func (s *Server) Count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data[name].order)
}

func (s *Server) authenticate(c *gin.Context) {
	if s.token == "" {
		c.Next()
		return
	}
	header := c.GetHeader("Authorization")
	if header != "Bearer "+s.token {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "ugyldig eller utløpt sesjon"})
		return
	}
	c.Next()
}

func (s *Server) handleList(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		col := s.data[name]

		query := c.Request.URL.Query()
		rows := col.all()
		rows = applyFilters(rows, query)
		if search := query.Get("search"); search != "" {
			rows = applySearch(rows, search)
		}
		if sortBy := query.Get("sort_by"); sortBy != "" {
			applySort(rows, sortBy, query.Get("sort_order"))
		}

		if col.opts.BareArray {
			c.JSON(http.StatusOK, rows)
			return
		}

		page := intParam(query.Get("page"), 1)
		pageSize := intParam(query.Get("page_size"), 50)
		total := len(rows)
		totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

		start := (page - 1) * pageSize
		if start > total {
			start = total
		}
		end := start + pageSize
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       rows[start:end],
			"total":       total,
			"page":        page,
			"page_size":   pageSize,
			"total_pages": totalPages,
		})
	}
}

func (s *Server) handleGet(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		record, ok := s.data[name].lookup(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": name + ": ikke funnet"})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

func (s *Server) handleCreate(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		col := s.data[name]

		if col.opts.ReadOnly {
			c.JSON(http.StatusForbidden, gin.H{"detail": "ingen tilgang"})
			return
		}

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "ugyldig forespørsel"})
			return
		}
		if fields := col.validate(body); fields != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "valideringsfeil", "errors": fields})
			return
		}

		id := col.nextID
		col.nextID++
		body["id"] = id
		col.records[id] = body
		col.order = append(col.order, id)

		c.JSON(http.StatusCreated, body)
	}
}

func (s *Server) handleUpdate(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		col := s.data[name]

		if col.opts.ReadOnly {
			c.JSON(http.StatusForbidden, gin.H{"detail": "ingen tilgang"})
			return
		}

		record, ok := col.lookup(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": name + ": ikke funnet"})
			return
		}

		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "ugyldig forespørsel"})
			return
		}

		// Partial update semantics: merge the patch, then validate the
		// merged record so absent fields stay untouched.
		merged := make(map[string]any, len(record)+len(patch))
		for k, v := range record {
			merged[k] = v
		}
		for k, v := range patch {
			if k == "id" {
				continue
			}
			merged[k] = v
		}
		if fields := col.validate(merged); fields != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "valideringsfeil", "errors": fields})
			return
		}

		id := merged["id"].(int64)
		col.records[id] = merged
		c.JSON(http.StatusOK, merged)
	}
}

func (s *Server) handleDelete(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		col := s.data[name]

		if col.opts.ReadOnly {
			c.JSON(http.StatusForbidden, gin.H{"detail": "ingen tilgang"})
			return
		}

		record, ok := col.lookup(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": name + ": ikke funnet"})
			return
		}

		id := record["id"].(int64)
		delete(col.records, id)
		for i, existing := range col.order {
			if existing == id {
				col.order = append(col.order[:i], col.order[i+1:]...)
				break
			}
		}
		c.Status(http.StatusNoContent)
	}
}

func (col *collection) all() []map[string]any {
	rows := make([]map[string]any, 0, len(col.order))
	for _, id := range col.order {
		rows = append(rows, col.records[id])
	}
	return rows
}

func (col *collection) lookup(idParam string) (map[string]any, bool) {
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return nil, false
	}
	record, ok := col.records[id]
	return record, ok
}

// validate runs the collection's schema against a payload and returns
// per-field problems, nil when valid or unvalidated.
func (col *collection) validate(payload map[string]any) map[string][]string {
	if col.schema == nil {
		return nil
	}

	// The stored id is internal; schemas describe client payloads.
	doc := make(map[string]any, len(payload))
	for k, v := range payload {
		if k == "id" {
			continue
		}
		doc[k] = v
	}

	result, err := col.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return map[string][]string{"(root)": {err.Error()}}
	}
	if result.Valid() {
		return nil
	}

	fields := make(map[string][]string)
	for _, problem := range result.Errors() {
		fields[problem.Field()] = append(fields[problem.Field()], problem.Description())
	}
	return fields
}

func intParam(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// applyFilters keeps rows whose fields match every non-reserved query
// parameter. Repeated keys are OR-ed: group_ids=1&group_ids=2 matches rows
// whose group_ids renders as 1 or 2.
func applyFilters(rows []map[string]any, query map[string][]string) []map[string]any {
	reserved := map[string]bool{"page": true, "page_size": true, "search": true, "sort_by": true, "sort_order": true}

	out := rows
	for key, wanted := range query {
		if reserved[key] {
			continue
		}
		filtered := out[:0:0]
		for _, row := range out {
			if matchesAny(row[key], wanted) {
				filtered = append(filtered, row)
			}
		}
		out = filtered
	}
	return out
}

func matchesAny(value any, wanted []string) bool {
	rendered := renderValue(value)
	for _, w := range wanted {
		if rendered == w {
			return true
		}
	}
	return false
}

func applySearch(rows []map[string]any, search string) []map[string]any {
	needle := strings.ToLower(search)
	out := rows[:0:0]
	for _, row := range rows {
		for _, v := range row {
			text, ok := v.(string)
			if ok && strings.Contains(strings.ToLower(text), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

func applySort(rows []map[string]any, sortBy, sortOrder string) {
	desc := sortOrder == "desc"
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := renderValue(rows[i][sortBy]), renderValue(rows[j][sortBy])
		if desc {
			return a > b
		}
		return a < b
	})
}

// renderValue gives a comparable string form. JSON numbers arrive as
// float64; integral ones render without a decimal point so they compare
// equal to query-string literals.
func renderValue(v any) string {
	if f, ok := v.(float64); ok && f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	if n, ok := v.(int64); ok {
		return strconv.FormatInt(n, 10)
	}
	return fmt.Sprintf("%v", v)
}
