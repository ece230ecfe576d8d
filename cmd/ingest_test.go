package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGenomesAssignsFilePositions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g0.fasta")
	content := ">gene1\nACGTACGT\n>gene2\nTTTTAAAA\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	container, err := loadGenomes([]string{path})
	if err != nil {
		t.Fatal(err)
	}

	if len(container.Genomes) != 1 {
		t.Fatalf("genomes = %d, want 1", len(container.Genomes))
	}
	genes := container.Genomes[0].Genes
	if len(genes) != 2 {
		t.Fatalf("genes = %d, want 2", len(genes))
	}
	if genes[0].ID != "gene1" || genes[0].FilePosition != 0 {
		t.Fatalf("gene0 = %+v", genes[0])
	}
	if genes[1].ID != "gene2" || genes[1].FilePosition != 1 {
		t.Fatalf("gene1 = %+v", genes[1])
	}
}

func TestGenomeFilesFromSkipsBlankAndCommentLines(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "genomes.txt")
	content := "g0.fasta\n\n# a comment\ng1.fasta\n"
	if err := os.WriteFile(listPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := genomeFilesFrom(listPath)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"g0.fasta", "g1.fasta"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files = %v, want %v", files, want)
		}
	}
}
