package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/infinivision/flatset/set"
)

func main() {
	src := "test.txt"
	if len(os.Args) > 1 {
		src = os.Args[1]
	} else if err := generate(src, 100); err != nil {
		log.Fatal(err)
	}

	cfg := set.DefaultConfig()
	cfg.Path = filepath.Join("test.db", "flat.set")
	s, err := set.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	n, err := s.Load(src)
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Sort(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("loaded %v entries with stride %v\n", n, s.Stride())
	{
		fp, err := os.Open(src)
		if err != nil {
			log.Fatal(err)
		}
		defer fp.Close()
		sc := bufio.NewScanner(fp)
		for sc.Scan() {
			if !s.Contains(sc.Bytes()) {
				log.Fatal(fmt.Errorf("'%s' is missing\n", sc.Text()))
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}
	for _, q := range []string{"/u/b/u_42", "/u/b/u_4", "notinfile"} {
		fmt.Printf("%s: %v\n", q, s.Search([]byte(q)))
	}
}

func generate(path string, n int) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(w, "/u/b/u_%v\n", i)
	}
	return w.Flush()
}
