package view

import (
	"testing"

	"github.com/pepperedit/core/internal/cursor"
	"github.com/pepperedit/core/internal/editor"
	"github.com/pepperedit/core/internal/position"
)

func TestViewHandleFromBufferHandleReusesExisting(t *testing.T) {
	reg := NewRegistry()
	buffers := editor.NewCollection()
	buf := buffers.Add(editor.New())

	h1 := reg.ViewHandleFromBufferHandle(1, buf)
	h2 := reg.ViewHandleFromBufferHandle(1, buf)
	if h1 != h2 {
		t.Errorf("expected same view handle for repeated (client, buffer) lookup, got %v and %v", h1, h2)
	}

	h3 := reg.ViewHandleFromBufferHandle(2, buf)
	if h3 == h1 {
		t.Error("expected a distinct view for a different client on the same buffer")
	}
}

func TestOnBufferInsertTextFansOutToCursors(t *testing.T) {
	reg := NewRegistry()
	buffers := editor.NewCollection()
	buf := buffers.Add(editor.NewFromText("hello world"))

	h := reg.ViewHandleFromBufferHandle(1, buf)
	v, _ := reg.Get(h)

	r := position.Range{From: position.Position{Line: 0, Column: 0}, To: position.Position{Line: 0, Column: 5}}
	reg.OnBufferInsertText(buf, r)

	main := v.Cursors.Main()
	if main.Position.Column != 5 {
		t.Errorf("cursor column after insert fan-out = %d, want 5", main.Position.Column)
	}
}

func TestOnBufferDeleteTextFansOutToCursors(t *testing.T) {
	reg := NewRegistry()
	buffers := editor.NewCollection()
	buf := buffers.Add(editor.NewFromText("hello world"))

	h := reg.ViewHandleFromBufferHandle(1, buf)
	v, _ := reg.Get(h)
	v.Cursors.WithCursors(func(g *cursor.Guard) {
		g.Set(0, cursor.AtPosition(position.Position{Line: 0, Column: 8}))
	})

	r := position.Range{From: position.Position{Line: 0, Column: 0}, To: position.Position{Line: 0, Column: 6}}
	reg.OnBufferDeleteText(buf, r)

	main := v.Cursors.Main()
	if main.Position.Column != 2 {
		t.Errorf("cursor column after delete fan-out = %d, want 2", main.Position.Column)
	}
}
