package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

const validSBML = `
<sbml>
  <model>
    <listOfSpecies>
      <species id="X" initialAmount="10"/>
    </listOfSpecies>
    <listOfParameters>
      <parameter id="k" value="2"/>
    </listOfParameters>
    <listOfReactions>
      <reaction id="r1">
        <listOfReactants>
          <speciesReference species="X"/>
        </listOfReactants>
        <listOfProducts/>
        <kineticLaw>
          <math>
            <apply>
              <times/>
              <ci>k</ci>
              <ci>X</ci>
            </apply>
          </math>
        </kineticLaw>
      </reaction>
    </listOfReactions>
  </model>
</sbml>`

func TestConvertSBMLCmd_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xml")
	out := filepath.Join(dir, "out.xml")
	if err := os.WriteFile(in, []byte(validSBML), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sbmlOutPath = out
	defer func() { sbmlOutPath = "" }()
	rootCmd.SetArgs([]string{"convert", "sbml", in})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty converted document")
	}
}
