package datasource

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/errors"
	"github.com/pierrec/lz4"
	"golang.org/x/sync/errgroup"
)

// A Transaction is one parsed transaction, before its labels are mapped to items
type Transaction struct {
	Line  int      // the line the transaction was read from, for error reporting
	Items []string // item labels, in file order, possibly repeated
}

// A Parser reads every Transaction of one file
type Parser interface {
	Parse(r io.Reader, path string) ([]Transaction, error)
}

// LoadConf configures the construction of a Dataset from parsed files
type LoadConf struct {
	Raw      bool   // iff true, labels are already dense item indices and are used as-is
	MaxItems uint64 // raw item indices must be below this; 0 selects DefaultMaxItems
}

// DefaultMaxItems bounds raw item indices, since counters are sized by the largest one
const DefaultMaxItems = 1 << 20

// Result is a loaded Dataset, along with the labels of its items
type Result struct {
	Dataset *itemsets.Dataset
	Labels  []string // Labels[i] is the label of item i. nil when items were loaded raw.
}

// Label returns the label of an item, or its index if no labels were kept
func (r *Result) Label(it itemsets.Item) string {
	if r.Labels == nil || int(it) >= len(r.Labels) {
		return strconv.FormatUint(uint64(it), 10)
	}
	return r.Labels[it]
}

// Format returns the labels of an Itemset separated by spaces
func (r *Result) Format(set itemsets.Itemset) string {
	if r.Labels == nil {
		return set.String()
	}
	labels := make([]string, len(set))
	for i, it := range set {
		labels[i] = r.Label(it)
	}
	return strings.Join(labels, " ")
}

type lz4File struct {
	*lz4.Reader
	f *os.File
}

func (l *lz4File) Close() error {
	return l.f.Close()
}

// Open opens a file for reading, transparently decompressing it if its name ends in .lz4
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".lz4") {
		return &lz4File{Reader: lz4.NewReader(f), f: f}, nil
	}
	return f, nil
}

// LoadFiles parses every file concurrently, and concatenates their transactions in
// argument order into one validated Dataset
func LoadFiles(paths []string, parser Parser, conf *LoadConf) (*Result, error) {
	parsed := make([][]Transaction, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			f, err := Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			parsed[i], err = parser.Parse(f, path)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return build(paths, parsed, conf)
}

// LoadBytes parses in-memory files, each named "memory[i]" in errors
func LoadBytes(data [][]byte, parser Parser, conf *LoadConf) (*Result, error) {
	paths := make([]string, len(data))
	parsed := make([][]Transaction, len(data))
	for i, d := range data {
		paths[i] = "memory[" + strconv.Itoa(i) + "]"
		var err error
		parsed[i], err = parser.Parse(bytes.NewReader(d), paths[i])
		if err != nil {
			return nil, err
		}
	}
	return build(paths, parsed, conf)
}

func build(paths []string, parsed [][]Transaction, conf *LoadConf) (*Result, error) {
	if conf == nil {
		conf = &LoadConf{}
	}
	limit := conf.MaxItems
	if limit == 0 {
		limit = DefaultMaxItems
	}
	total := 0
	for _, p := range parsed {
		total += len(p)
	}
	res := &Result{}
	transactions := make([]itemsets.Itemset, 0, total)
	index := make(map[string]itemsets.Item)
	for f, file := range parsed {
		for _, tx := range file {
			items := make([]itemsets.Item, len(tx.Items))
			for i, label := range tx.Items {
				if conf.Raw {
					v, err := strconv.ParseUint(label, 10, 32)
					if err != nil {
						return nil, errors.ParseError{Path: paths[f], Line: tx.Line, Token: label}
					}
					if v >= limit {
						return nil, errors.ItemLimitError{Path: paths[f], Line: tx.Line, Token: label, Limit: limit}
					}
					items[i] = itemsets.Item(v)
					continue
				}
				it, ok := index[label]
				if !ok {
					it = itemsets.Item(len(res.Labels))
					index[label] = it
					res.Labels = append(res.Labels, label)
				}
				items[i] = it
			}
			transactions = append(transactions, itemsets.NewItemset(items...))
		}
	}
	numItems := len(res.Labels)
	if conf.Raw {
		numItems = 0
	}
	res.Dataset = itemsets.NewDataset(transactions, numItems)
	if err := res.Dataset.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}
