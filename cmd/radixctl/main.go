package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bitpatricia/radix"
	"github.com/bitpatricia/radix/internal/fsck"
)

// radixctl is the process-level demo around the radix package: it
// provisions the backing buffer (an mmap'd file) and drives the
// library's insert/match/walk/fsck operations from
// the command line. The core package itself never touches a
// filesystem or a syscall - that boundary is this binary's job.
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	fileFlag := flag.NewFlagSet("radixctl", flag.ExitOnError)
	path := fileFlag.String("file", "radix.arena", "backing file for the arena")
	size := fileFlag.Int64("size", 1<<20, "arena size in bytes: the number of bytes mapped, and the size a smaller file is extended to")

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "insert":
		runInsert(fileFlag, path, size, args)
	case "match":
		runMatch(fileFlag, path, size, args)
	case "walk":
		runWalk(fileFlag, path, size, args)
	case "fsck":
		runFsck(fileFlag, path, size, args)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: radixctl <insert|match|walk|fsck> -file path [-size bytes] ...")
}

func openArena(path string, size int64) (*mappedFile, *radix.Arena, error) {
	mapped, err := openMappedFile(path, size)
	if err != nil {
		return nil, nil, err
	}

	a, openErr := radix.Open(mapped.data)
	if openErr != nil {
		a = radix.Create(mapped.data)
		if clearErr := radix.Clear(a); clearErr != nil {
			mapped.close()
			return nil, nil, clearErr
		}
	}

	return mapped, a, nil
}

func runInsert(fs *flag.FlagSet, path *string, size *int64, args []string) {
	key := fs.String("key", "", "key string, interpreted as ASCII bits MSB-first")
	value := fs.String("value", "", "value string; empty removes the key")
	fs.Parse(args)

	mapped, a, err := openArena(*path, *size)
	if err != nil {
		fatal(err)
	}
	defer mapped.close()

	keyBytes := []byte(*key)
	root := radix.Root(a)

	v, insertErr := radix.Insert(root, keyBytes, uint64(len(keyBytes))*8, []byte(*value))
	if insertErr != nil {
		fatal(insertErr)
	}

	fmt.Printf("inserted %q, item offset recorded, tombstone=%v\n", *key, len(v.Data()) == 0)
}

func runMatch(fs *flag.FlagSet, path *string, size *int64, args []string) {
	key := fs.String("key", "", "key string, interpreted as ASCII bits MSB-first")
	fs.Parse(args)

	mapped, a, err := openArena(*path, *size)
	if err != nil {
		fatal(err)
	}
	defer mapped.close()

	keyBytes := []byte(*key)
	m := radix.MatchExact(radix.Root(a), keyBytes, uint64(len(keyBytes))*8)

	if m.IsEmpty() {
		fmt.Println("no match")
		return
	}

	fmt.Printf("match: %q (matchedBits=%d)\n", string(m.Data()), m.MatchedBits())
}

func runWalk(fs *flag.FlagSet, path *string, size *int64, args []string) {
	fs.Parse(args)

	mapped, a, err := openArena(*path, *size)
	if err != nil {
		fatal(err)
	}
	defer mapped.close()

	for m := range radix.Ascend(a) {
		it := m.Iterator()
		bits := radix.KeyBits(it)
		buf := make([]byte, (bits+7)/8)
		radix.KeyCopy(it, buf, bits)

		fmt.Printf("%s = %s\n", buf, m.Data())
	}
}

func runFsck(fs *flag.FlagSet, path *string, size *int64, args []string) {
	fs.Parse(args)

	mapped, a, err := openArena(*path, *size)
	if err != nil {
		fatal(err)
	}
	defer mapped.close()

	if err := fsck.Check(a); err != nil {
		fmt.Println("fsck: FAIL:", err)
		os.Exit(1)
	}

	fmt.Println("fsck: OK")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "radixctl:", err)
	os.Exit(1)
}
