// Package dat parses FIMI-style .dat files: one transaction per line, items
// separated by whitespace.
package dat

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-sif/itemsets/datasource"
)

// ParserConf configures a dat Parser
type ParserConf struct {
	HeaderLines   int  // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Comment       rune // Lines beginning with the comment character are ignored. Defaults to no comment character.
	SkipEmpty     bool // iff true, blank lines are ignored instead of producing empty transactions
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser reads whitespace-separated transactions
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new dat Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = 16 * bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse reads every transaction of r
func (p *Parser) Parse(r io.Reader, path string) ([]datasource.Transaction, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	var res []datasource.Transaction
	line := 0
	for scanner.Scan() {
		line++
		if line <= p.conf.HeaderLines {
			continue
		}
		text := scanner.Text()
		if p.conf.Comment != 0 && strings.HasPrefix(text, string(p.conf.Comment)) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 0 && p.conf.SkipEmpty {
			continue
		}
		res = append(res, datasource.Transaction{Line: line, Items: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
