package eval

import (
	"strings"

	"github.com/Twisol/molt/pkg/list"
)

// Proc is a procedure defined by the proc command.
type Proc struct {
	Name   string
	Params []Param
	Body   string
}

// Param is a formal parameter of a procedure.
type Param struct {
	Name       string
	Default    string
	HasDefault bool
}

// The name of a final parameter that collects the remaining arguments.
const restParam = "args"

func newProc(name, params, body string) (*Proc, Result) {
	specs, err := list.Decode(params)
	if err != nil {
		return nil, ErrorResult(err.Error())
	}
	p := &Proc{Name: name, Body: body}
	for _, spec := range specs {
		fields, err := list.Decode(spec)
		if err != nil {
			return nil, ErrorResult(err.Error())
		}
		switch len(fields) {
		case 0:
			return nil, Errorf("argument with no name")
		case 1:
			p.Params = append(p.Params, Param{Name: fields[0]})
		case 2:
			p.Params = append(p.Params, Param{fields[0], fields[1], true})
		default:
			return nil, Errorf("too many fields in argument specifier \"%s\"", spec)
		}
	}
	return p, Okay("")
}

// ParamNames returns the names of the parameters.
func (p *Proc) ParamNames() []string {
	names := make([]string, len(p.Params))
	for i, param := range p.Params {
		names[i] = param.Name
	}
	return names
}

func (p *Proc) variadic() bool {
	n := len(p.Params)
	return n > 0 && p.Params[n-1].Name == restParam
}

// Calls the procedure in a new frame. The frame is popped however the body
// finishes.
func (p *Proc) call(in *Interp, argv []string) Result {
	in.Scope.Push()
	defer in.Scope.Pop()

	if r := p.bind(in.Scope, argv); r.Code != OK {
		return r
	}
	r := in.EvalScript("proc "+p.Name, p.Body)
	switch r.Code {
	case Return:
		return Okay(r.Value)
	case Break, Continue:
		return Errorf("invoked \"%s\" outside of a loop", r.Code)
	}
	return r
}

func (p *Proc) bind(s *Scope, argv []string) Result {
	args := argv[1:]
	params := p.Params
	if p.variadic() {
		params = params[:len(params)-1]
	} else if len(args) > len(params) {
		return p.wrongArgs(argv[0])
	}
	for i, param := range params {
		switch {
		case i < len(args):
			s.Set(param.Name, args[i])
		case param.HasDefault:
			s.Set(param.Name, param.Default)
		default:
			return p.wrongArgs(argv[0])
		}
	}
	if p.variadic() {
		var rest []string
		if len(args) > len(params) {
			rest = args[len(params):]
		}
		s.Set(restParam, list.Encode(rest))
	}
	return Okay("")
}

func (p *Proc) wrongArgs(name string) Result {
	var sb strings.Builder
	sb.WriteString(name)
	for i, param := range p.Params {
		sb.WriteByte(' ')
		switch {
		case i == len(p.Params)-1 && param.Name == restParam:
			sb.WriteString("?arg ...?")
		case param.HasDefault:
			sb.WriteString("?" + param.Name + "?")
		default:
			sb.WriteString(param.Name)
		}
	}
	return Errorf("wrong # args: should be \"%s\"", sb.String())
}
