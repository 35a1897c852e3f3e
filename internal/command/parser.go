package command

import "strings"

// ParsedCommand is a single successfully parsed command invocation.
type ParsedCommand struct {
	Name string
	Bang bool
	Args []string
}

// ParseError carries a reference to the offending token's position in
// the original command text, for caret-underline display.
type ParseError struct {
	Err         error
	CommandText string
	Token       Token
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Display renders the command text, a caret underline beneath the
// offending token, and the error message.
func (e *ParseError) Display() string {
	var b strings.Builder
	b.WriteString(e.CommandText)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", e.Token.Start))
	b.WriteByte('^')
	b.WriteByte('\n')
	b.WriteString(e.Err.Error())
	return b.String()
}

// Parse tokenizes text and parses it against registry: (1) the first
// token must be a command name; (2) an optional leading Bang sets
// Bang=true; (3) the name is looked up, and bang usage is validated;
// (4) positional arguments are consumed up to the command's declared
// parameter count; (5) a short argument list is reported against its
// last consumed token, or the command name if none were consumed.
func Parse(text string, registry *Registry) (*ParsedCommand, *ParseError) {
	tokens := Tokenize(text)
	if len(tokens) == 0 || tokens[0].Kind != TokenText {
		tok := Token{Start: 0, End: 0}
		if len(tokens) > 0 {
			tok = tokens[0]
		}
		return nil, &ParseError{Err: ErrInvalidCommandName, CommandText: text, Token: tok}
	}

	nameToken := tokens[0]
	idx := 1
	bang := false
	var bangToken Token
	if idx < len(tokens) && tokens[idx].Kind == TokenBang {
		bang = true
		bangToken = tokens[idx]
		idx++
	}

	spec, ok := registry.Lookup(nameToken.Text)
	if !ok {
		return nil, &ParseError{Err: ErrCommandNotFound, CommandText: text, Token: nameToken}
	}
	if bang && spec.BangUsage == "" {
		return nil, &ParseError{Err: ErrCommandDoesNotAcceptBang, CommandText: text, Token: bangToken}
	}

	args := make([]string, 0, len(spec.Params))
	for idx < len(tokens) {
		t := tokens[idx]
		if len(args) >= len(spec.Params) {
			return nil, &ParseError{Err: ErrTooManyArguments, CommandText: text, Token: t}
		}
		switch t.Kind {
		case TokenText:
			args = append(args, t.Text)
		case TokenBang:
			return nil, &ParseError{Err: ErrInvalidArgument, CommandText: text, Token: t}
		case TokenUnterminated:
			return nil, &ParseError{Err: ErrUnterminatedArgument, CommandText: text, Token: t}
		}
		idx++
	}

	if len(args) < len(spec.Params) {
		errTok := nameToken
		if len(args) > 0 {
			errTok = tokens[idx-1]
		}
		return nil, &ParseError{Err: ErrTooFewArguments, CommandText: text, Token: errTok}
	}

	return &ParsedCommand{Name: nameToken.Text, Bang: bang, Args: args}, nil
}

// Dispatch parses text and, on success, invokes the matched command's
// handler if one is registered.
func Dispatch(text string, registry *Registry) *ParseError {
	cmd, perr := Parse(text, registry)
	if perr != nil {
		return perr
	}
	spec, ok := registry.Lookup(cmd.Name)
	if !ok || spec.Handler == nil {
		return nil
	}
	if err := spec.Handler(*cmd); err != nil {
		return &ParseError{Err: err, CommandText: text, Token: Token{}}
	}
	return nil
}
