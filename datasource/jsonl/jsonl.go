// Package jsonl parses JSON Lines transaction files. This parser uses
// https://github.com/tidwall/gjson to locate the item array of each line, so the
// location may be any gjson path.
package jsonl

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-sif/itemsets/datasource"
	"github.com/go-sif/itemsets/errors"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser
type ParserConf struct {
	Path          string // gjson path of the item array within each line. Defaults to "items".
	MaxBufferSize int    // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser reads one transaction per JSON object
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Path == "" {
		conf.Path = "items"
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = 16 * bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse reads every transaction of r. Blank lines are ignored. A line which is not
// valid JSON, or whose path does not hold an array, is a ParseError.
func (p *Parser) Parse(r io.Reader, path string) ([]datasource.Transaction, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	var res []datasource.Transaction
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if !gjson.Valid(text) {
			return nil, errors.ParseError{Path: path, Line: line, Token: text}
		}
		value := gjson.Get(text, p.conf.Path)
		if !value.IsArray() {
			return nil, errors.ParseError{Path: path, Line: line, Token: value.Raw}
		}
		tx := datasource.Transaction{Line: line}
		value.ForEach(func(_, item gjson.Result) bool {
			tx.Items = append(tx.Items, item.String())
			return true
		})
		res = append(res, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
