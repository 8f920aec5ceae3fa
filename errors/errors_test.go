package errors

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	err := New("0")
	err1 := Wrap(err, "1")
	err2 := Wrap(err1, "2")
	err3 := Wrap(err2)

	if got := Root(err3); got != err {
		t.Fatalf("Root(%v)=%v want %v", err3, got, err)
	}

	if g, w := err2.Error(), "2: 1: 0"; g != w {
		t.Fatalf("err2.Error()=%q want %q", g, w)
	}

	if Stack(err1) == nil {
		t.Fatal("expected a stack on wrapped error")
	}

	if Wrap(nil, "x") != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(New("root"), "render %d", 42)
	if g, w := err.Error(), "render 42: root"; g != w {
		t.Errorf("Error()=%q want %q", g, w)
	}
}

func TestSub(t *testing.T) {
	root := New("root")
	cause := fmt.Errorf("cause")

	err := Sub(root, cause)
	if Root(err) != root {
		t.Errorf("Root(Sub(root, cause)) = %v want %v", Root(err), root)
	}
	if !strings.HasSuffix(err.Error(), "cause") {
		t.Errorf("Sub message %q should keep the cause text", err.Error())
	}
	if !Is(err, root) || !stderrors.Is(err, root) {
		t.Error("errors.Is should see the substituted root")
	}

	if Sub(nil, cause) != nil || Sub(root, nil) != nil {
		t.Error("Sub with a nil argument should be nil")
	}
}

func TestDetail(t *testing.T) {
	root := New("foo")
	cases := []struct {
		err     error
		wantMsg string
		wantDet string
	}{
		{
			err:     root,
			wantMsg: "foo",
		},
		{
			err:     WithDetail(root, "bar"),
			wantMsg: "bar: foo",
			wantDet: "bar",
		},
		{
			err:     WithDetail(WithDetail(root, "bar"), "baz"),
			wantMsg: "baz: bar: foo",
			wantDet: "bar; baz",
		},
		{
			err:     Wrap(WithDetail(root, "bar"), "baz"),
			wantMsg: "baz: bar: foo",
			wantDet: "bar",
		},
		{
			err:     WithDetailf(root, "at %d", 3),
			wantMsg: "at 3: foo",
			wantDet: "at 3",
		},
	}

	for _, c := range cases {
		if got := c.err.Error(); got != c.wantMsg {
			t.Errorf("Error(%v) = %q want %q", c.err, got, c.wantMsg)
		}
		if got := Detail(c.err); got != c.wantDet {
			t.Errorf("Detail(%v) = %q want %q", c.err, got, c.wantDet)
		}
		if Root(c.err) != root {
			t.Errorf("Root(%v) = %v want %v", c.err, Root(c.err), root)
		}
	}
}

func TestData(t *testing.T) {
	root := New("foo")
	cases := []struct {
		err  error
		data map[string]interface{}
	}{
		{WithData(root, "a", "b"), map[string]interface{}{"a": "b"}},
		{WithData(WithData(root, "a", "b"), "c", "d"), map[string]interface{}{"a": "b", "c": "d"}},
		{Wrap(WithData(root, "a", "b"), "baz"), map[string]interface{}{"a": "b"}},
	}

	for _, c := range cases {
		if got := Data(c.err); !reflect.DeepEqual(got, c.data) {
			t.Errorf("Data(%#v) = %v want %v", c.err, got, c.data)
		}
	}
}

func TestFormatStack(t *testing.T) {
	err := Wrap(New("boom"), "outer")
	if got := fmt.Sprintf("%v", err); got != "outer: boom" {
		t.Errorf("%%v = %q", got)
	}
	if got := fmt.Sprintf("%+v", err); !strings.Contains(got, "TestFormatStack") {
		t.Errorf("%%+v should include the calling frame, got %q", got)
	}
}
