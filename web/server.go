package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/odvcencio/inkwell/editor"
)

//go:embed static/*
var staticFS embed.FS

// EditorState is the slice of the editor the web frontend operates on: the
// workspace to pick buffers, the active document to read and edit.
type EditorState interface {
	Workspace() *editor.Workspace
	ActiveDocument() *editor.Document
}

// Server drives the web frontend: static files over HTTP, editing over a
// WebSocket RPC protocol, document change notifications pushed to every
// connected client.
type Server struct {
	state    EditorState
	logger   *slog.Logger
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  []*wsClient
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

type rpcRequest struct {
	ID     any             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	ID     any       `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Wire types. The engine's own structs stay wire-free; the server owns the
// JSON shape.

type positionDTO struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

type regionDTO struct {
	Start positionDTO `json:"start"`
	End   positionDTO `json:"end"`
}

type cursorDTO struct {
	ID        int         `json:"id"`
	Pos       positionDTO `json:"pos"`
	Selection *regionDTO  `json:"selection,omitempty"`
}

type segmentDTO struct {
	Style  string `json:"style"`
	Start  int    `json:"start"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

type lineDTO struct {
	Index  int    `json:"index"`
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Indent int    `json:"indent"`
}

type blockDTO struct {
	Column    int `json:"column"`
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

type bufferDTO struct {
	Index  int    `json:"index"`
	Path   string `json:"path"`
	Title  string `json:"title"`
	Dirty  bool   `json:"dirty"`
	Active bool   `json:"active"`
}

func toPositionDTO(p editor.Position) positionDTO {
	return positionDTO{Line: p.Line, Col: p.Col}
}

func toRegionDTO(r editor.Region) regionDTO {
	return regionDTO{Start: toPositionDTO(r.Start), End: toPositionDTO(r.End)}
}

// NewServer creates a web server backed by the given editor state. A nil
// logger falls back to the default.
func NewServer(state EditorState, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		state:  state,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/ws" {
		s.handleWebSocket(w, r)
		return
	}
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		http.Error(w, "static files unavailable", 500)
		return
	}
	http.FileServer(http.FS(sub)).ServeHTTP(w, r)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	client := &wsClient{conn: conn}
	s.mu.Lock()
	s.clients = append(s.clients, client)
	s.mu.Unlock()

	defer func() {
		conn.Close()
		s.mu.Lock()
		for i, c := range s.clients {
			if c == client {
				s.clients = append(s.clients[:i], s.clients[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req rpcRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			continue
		}
		resp := s.handleRPC(req)
		data, _ := json.Marshal(resp)
		client.mu.Lock()
		_ = conn.WriteMessage(websocket.TextMessage, data)
		client.mu.Unlock()
	}
}

func (s *Server) handleRPC(req rpcRequest) rpcResponse {
	switch req.Method {
	case "doc.text":
		return s.rpcDocText(req)
	case "doc.setText":
		return s.rpcDocSetText(req)
	case "doc.lines":
		return s.rpcDocLines(req)
	case "doc.renderLine":
		return s.rpcDocRenderLine(req)
	case "doc.indentRegions":
		return s.rpcDocIndentRegions(req)
	case "doc.find":
		return s.rpcDocFind(req)
	case "doc.replaceAll":
		return s.rpcDocReplaceAll(req)
	case "cursor.list":
		return s.rpcCursorList(req)
	case "cursor.move":
		return s.rpcCursorMove(req)
	case "cursor.add":
		return s.rpcCursorAdd(req)
	case "cursor.clear":
		return s.rpcCursorClear(req)
	case "cursor.insert":
		return s.rpcCursorInsert(req)
	case "cursor.newline":
		return s.rpcCursorNewline(req)
	case "cursor.deleteBackwards":
		return s.rpcCursorDeleteBackwards(req)
	case "cursor.deleteForwards":
		return s.rpcCursorDeleteForwards(req)
	case "workspace.list":
		return s.rpcWorkspaceList(req)
	case "workspace.open":
		return s.rpcWorkspaceOpen(req)
	case "workspace.setActive":
		return s.rpcWorkspaceSetActive(req)
	case "workspace.save":
		return s.rpcWorkspaceSave(req)
	default:
		return rpcResponse{
			ID:    req.ID,
			Error: &rpcError{Code: -32601, Message: fmt.Sprintf("unknown method: %s", req.Method)},
		}
	}
}

// decodeParams unmarshals the request params into v, reporting an invalid
// params error on failure.
func decodeParams(req rpcRequest, v any) *rpcError {
	if len(req.Params) == 0 {
		return &rpcError{Code: -32602, Message: "missing params"}
	}
	if err := json.Unmarshal(req.Params, v); err != nil {
		return &rpcError{Code: -32602, Message: err.Error()}
	}
	return nil
}

// activeDoc fetches the active document, or an error response when no
// buffer is open.
func (s *Server) activeDoc(req rpcRequest) (*editor.Document, *rpcResponse) {
	doc := s.state.ActiveDocument()
	if doc == nil {
		return nil, &rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: "no active document"}}
	}
	return doc, nil
}

func (s *Server) rpcDocText(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	return rpcResponse{ID: req.ID, Result: map[string]string{
		"text":     doc.Text(),
		"language": doc.Language(),
	}}
}

func (s *Server) rpcDocSetText(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		Text string `json:"text"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	doc.SetText(p.Text)
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcDocLines(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	lines := make([]lineDTO, doc.LineCount())
	for i := range lines {
		lines[i] = lineDTO{
			Index:  i,
			ID:     doc.LineID(i),
			Text:   doc.LineContent(i),
			Indent: doc.LineIndent(i),
		}
	}
	return rpcResponse{ID: req.ID, Result: map[string]any{"lines": lines}}
}

func (s *Server) rpcDocRenderLine(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		Line int `json:"line"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	if p.Line < 0 || p.Line >= doc.LineCount() {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: fmt.Sprintf("line %d out of range", p.Line)}}
	}
	elems := doc.RenderElements(p.Line)
	segs := make([]segmentDTO, len(elems))
	for i, e := range elems {
		segs[i] = segmentDTO{Style: e.Style, Start: e.Start, Length: e.Length, Text: e.Text}
	}
	return rpcResponse{ID: req.ID, Result: map[string]any{"segments": segs}}
}

func (s *Server) rpcDocIndentRegions(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	columns := doc.IndentRegions()
	out := make([][]blockDTO, len(columns))
	for c, blocks := range columns {
		out[c] = make([]blockDTO, len(blocks))
		for i, b := range blocks {
			out[c][i] = blockDTO{Column: b.Column, StartLine: b.StartLine, EndLine: b.EndLine}
		}
	}
	return rpcResponse{ID: req.ID, Result: map[string]any{"columns": out}}
}

func (s *Server) rpcDocFind(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		Query string `json:"query"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	regions := doc.Find(p.Query)
	matches := make([]regionDTO, len(regions))
	for i, r := range regions {
		matches[i] = toRegionDTO(r)
	}
	return rpcResponse{ID: req.ID, Result: map[string]any{"matches": matches}}
}

func (s *Server) rpcDocReplaceAll(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		Query       string `json:"query"`
		Replacement string `json:"replacement"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	count := doc.ReplaceAll(p.Query, p.Replacement)
	return rpcResponse{ID: req.ID, Result: map[string]int{"count": count}}
}

func (s *Server) rpcCursorList(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var cursors []cursorDTO
	doc.Cursors().ForEach(func(c *editor.Cursor) {
		dto := cursorDTO{ID: c.ID(), Pos: toPositionDTO(c.Pos())}
		if sel := c.Selection(); sel.Active() {
			r := toRegionDTO(sel.Region)
			dto.Selection = &r
		}
		cursors = append(cursors, dto)
	})
	return rpcResponse{ID: req.ID, Result: map[string]any{"cursors": cursors}}
}

func (s *Server) rpcCursorMove(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		Motion string `json:"motion"`
		Extend bool   `json:"extend"`
		N      int    `json:"n"`
		Line   int    `json:"line"`
		Col    int    `json:"col"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	if p.N < 1 {
		p.N = 1
	}
	switch p.Motion {
	case "left":
		doc.MoveLeft(p.Extend)
	case "right":
		doc.MoveRight(p.Extend)
	case "up":
		doc.MoveUp(p.N, p.Extend)
	case "down":
		doc.MoveDown(p.N, p.Extend)
	case "wordLeft":
		doc.MoveWordLeft(p.Extend)
	case "wordRight":
		doc.MoveWordRight(p.Extend)
	case "lineStart":
		doc.MoveLineStart(true, p.Extend)
	case "lineEnd":
		doc.MoveLineEnd(p.Extend)
	case "docStart":
		doc.MoveDocStart(p.Extend)
	case "docEnd":
		doc.MoveDocEnd(p.Extend)
	case "to":
		doc.MoveTo(editor.Position{Line: p.Line, Col: p.Col}, p.Extend)
	default:
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: fmt.Sprintf("unknown motion: %s", p.Motion)}}
	}
	return rpcResponse{ID: req.ID, Result: map[string]any{"pos": toPositionDTO(doc.PrimaryPos())}}
}

func (s *Server) rpcCursorAdd(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		Line int `json:"line"`
		Col  int `json:"col"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	doc.AddCursor(editor.Position{Line: p.Line, Col: p.Col})
	return rpcResponse{ID: req.ID, Result: map[string]int{"count": doc.Cursors().Count()}}
}

func (s *Server) rpcCursorClear(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	doc.ClearSecondaryCursors()
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcCursorInsert(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		Text string `json:"text"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	doc.Insert(p.Text)
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcCursorNewline(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		AutoIndent bool `json:"autoIndent"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	doc.InsertNewline(p.AutoIndent)
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcCursorDeleteBackwards(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		N int `json:"n"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	if p.N < 1 {
		p.N = 1
	}
	doc.DeleteBackwards(p.N)
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcCursorDeleteForwards(req rpcRequest) rpcResponse {
	doc, errResp := s.activeDoc(req)
	if errResp != nil {
		return *errResp
	}
	var p struct {
		N int `json:"n"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	if p.N < 1 {
		p.N = 1
	}
	doc.DeleteForwards(p.N)
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcWorkspaceList(req rpcRequest) rpcResponse {
	ws := s.state.Workspace()
	buffers := make([]bufferDTO, ws.Count())
	for i, buf := range ws.Buffers() {
		buffers[i] = bufferDTO{
			Index:  i,
			Path:   buf.Path(),
			Title:  buf.Title(),
			Dirty:  buf.Dirty(),
			Active: i == ws.Active(),
		}
	}
	return rpcResponse{ID: req.ID, Result: map[string]any{"buffers": buffers}}
}

func (s *Server) rpcWorkspaceOpen(req rpcRequest) rpcResponse {
	var p struct {
		Path string `json:"path"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	index, err := s.state.Workspace().OpenFile(p.Path)
	if err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	return rpcResponse{ID: req.ID, Result: map[string]int{"index": index}}
}

func (s *Server) rpcWorkspaceSetActive(req rpcRequest) rpcResponse {
	var p struct {
		Index int `json:"index"`
	}
	if rpcErr := decodeParams(req, &p); rpcErr != nil {
		return rpcResponse{ID: req.ID, Error: rpcErr}
	}
	s.state.Workspace().SetActive(p.Index)
	return rpcResponse{ID: req.ID, Result: map[string]int{"active": s.state.Workspace().Active()}}
}

func (s *Server) rpcWorkspaceSave(req rpcRequest) rpcResponse {
	if err := s.state.Workspace().SaveActive(); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "saved"}}
}

// WatchDocument forwards a document's change notifications to every
// connected client until the returned cancel runs.
func (s *Server) WatchDocument(doc *editor.Document) func() {
	return doc.Observe(editor.EventAny, func(ev editor.Event) {
		s.Broadcast("doc.event", map[string]any{
			"kind": eventKindName(ev.Kind),
			"line": ev.Line,
		})
	})
}

func eventKindName(k editor.EventKind) string {
	switch k {
	case editor.EventLineChanged:
		return "lineChanged"
	case editor.EventLinesChanged:
		return "linesChanged"
	case editor.EventCursorsChanged:
		return "cursorsChanged"
	case editor.EventDocumentReset:
		return "reset"
	}
	return "unknown"
}

// Broadcast sends a notification to all connected WebSocket clients.
func (s *Server) Broadcast(method string, params any) {
	msg, err := json.Marshal(map[string]any{
		"method": method,
		"params": params,
	})
	if err != nil {
		return
	}
	s.mu.Lock()
	clients := append([]*wsClient(nil), s.clients...)
	s.mu.Unlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
		c.mu.Unlock()
	}
}
