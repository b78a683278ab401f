package set

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/infinivision/flatset/array"
	"github.com/infinivision/flatset/constant"
	"github.com/infinivision/flatset/disk"
	"github.com/infinivision/flatset/errmsg"
	"github.com/infinivision/flatset/heapsort"
	"github.com/infinivision/flatset/loader"
	"github.com/infinivision/flatset/record"
	"github.com/infinivision/flatset/region"
	"github.com/infinivision/flatset/scratch"
	"github.com/infinivision/flatset/search"
	"github.com/infinivision/flatset/stride"
	"github.com/nnsgmsone/damrey/logger"
)

func DefaultConfig() Config {
	return Config{
		Path:           "flat.set",
		Variant:        Growing,
		LogWriter:      os.Stderr,
		ReadBufferSize: constant.ReadBufferSize,
	}
}

// Open binds a new, empty set to cfg.Path. Any previous content of the file
// is discarded.
func Open(cfg Config) (*set, error) {
	if err := checkDir(filepath.Dir(cfg.Path)); err != nil {
		return nil, err
	}
	if cfg.LogWriter == nil {
		cfg.LogWriter = os.Stderr
	}
	if cfg.ReadBufferSize <= 0 {
		cfg.ReadBufferSize = constant.ReadBufferSize
	}
	f := record.SpaceFiller
	if cfg.Variant == Growing {
		f = record.ZeroFiller
		if err := os.Remove(cfg.Path); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	d, err := disk.New(cfg.Path, true)
	if err != nil {
		return nil, err
	}
	return &set{
		cfg:  cfg,
		f:    f,
		a:    array.New(d, constant.InitialStride, f, cfg.ReadBufferSize),
		log:  logger.New(cfg.LogWriter, "flatset"),
		pool: scratch.New(),
	}, nil
}

func (s *set) Close() error {
	s.Lock()
	defer s.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.drop()
	return s.a.Close()
}

// Load replaces the content of the set with the lines of the file at path.
func (s *set) Load(path string) (int64, error) {
	s.Lock()
	defer s.Unlock()
	if err := s.mutable(); err != nil {
		return 0, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	s.drop()
	var l loader.Loader
	switch s.cfg.Variant {
	case Fixed:
		l = loader.NewFixed(s.a, s.cfg.ReadBufferSize)
	default:
		l = loader.NewGrowing(s.a, s.cfg.ReadBufferSize)
	}
	n, err := l.Load(fp)
	if err != nil {
		s.log.Errorf("load '%s' failed: %v\n", path, err)
		return 0, errors.Wrapf(err, "load %s", path)
	}
	return n, nil
}

// Add appends v, widening every record first if v does not fit.
func (s *set) Add(v []byte) error {
	s.Lock()
	defer s.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	s.drop()
	if len(v) > s.a.Stride() {
		if err := s.a.Resize(stride.Next(len(v))); err != nil {
			s.log.Errorf("add '%s' failed to resize: %v\n", v, err)
			return err
		}
	}
	if err := s.a.Append(v); err != nil {
		s.log.Errorf("add '%s' failed: %v\n", v, err)
		return err
	}
	return nil
}

// Sort orders the records in place. Once sorted the set accepts no more
// values; sorting again is allowed.
func (s *set) Sort() error {
	s.Lock()
	defer s.Unlock()
	if s.closed {
		return errmsg.Closed
	}
	s.drop()
	r, err := s.a.Map()
	if err != nil {
		s.log.Errorf("sort failed to map: %v\n", err)
		return err
	}
	if err := r.WillNeed(); err != nil {
		r.Close()
		return err
	}
	if err := heapsort.Sort(r, s.a.Len()); err != nil {
		r.Close()
		s.log.Errorf("sort failed: %v\n", err)
		return err
	}
	if err := r.Flush(); err != nil {
		r.Close()
		return err
	}
	if err := r.Random(); err != nil {
		r.Close()
		return err
	}
	s.rg = r
	s.sorted = true
	return nil
}

// Search returns the index of a record equal to q or constant.NotFound.
func (s *set) Search(q []byte) int64 {
	r, err := s.region()
	if err != nil {
		s.log.Errorf("search '%s' failed to map: %v\n", q, err)
		return constant.NotFound
	}
	buf := s.pool.Get(r.Stride())
	defer s.pool.Put(buf)
	i, err := search.Search(r, r.Records(), q, s.f, *buf)
	if err != nil {
		s.log.Errorf("search '%s' failed: %v\n", q, err)
		return constant.NotFound
	}
	return i
}

func (s *set) Contains(q []byte) bool {
	return s.Search(q) != constant.NotFound
}

func (s *set) Len() int64 {
	s.Lock()
	defer s.Unlock()
	return s.a.Len()
}

func (s *set) Stride() int {
	s.Lock()
	defer s.Unlock()
	return s.a.Stride()
}

// region returns the mapping shared by searches, creating it on first use.
func (s *set) region() (region.Region, error) {
	s.Lock()
	defer s.Unlock()
	if s.closed {
		return nil, errmsg.Closed
	}
	if s.rg == nil {
		r, err := s.a.Map()
		if err != nil {
			return nil, err
		}
		if err := r.Random(); err != nil {
			r.Close()
			return nil, err
		}
		s.rg = r
	}
	return s.rg, nil
}

func (s *set) mutable() error {
	switch {
	case s.closed:
		return errmsg.Closed
	case s.sorted:
		return errmsg.AlreadySorted
	}
	return nil
}

// drop unmaps the search view, it goes stale on any mutation.
func (s *set) drop() {
	if s.rg != nil {
		if err := s.rg.Close(); err != nil {
			s.log.Errorf("unmap failed: %v\n", err)
		}
		s.rg = nil
	}
}

func checkDir(dir string) error {
	st, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, os.FileMode(constant.DirMode))
	}
	if err != nil {
		return err
	}
	if !st.IsDir() {
		return errors.Wrapf(errmsg.NotDirectory, "'%s'", dir)
	}
	return nil
}
