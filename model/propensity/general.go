package propensity

import (
	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
	"github.com/sclamons/bioscrape-distr/model/expr"
)

var generalKnownKeys = []string{"rate"}

func generalNames(f attrs.Fields) (species, params []string, err error) {
	rate, err := f.RequireString("rate")
	if err != nil {
		return nil, nil, malformed("general", err)
	}
	parsed, err := expr.Parse(rate)
	if err != nil {
		return nil, nil, err
	}
	return parsed.FreeSpecies, parsed.FreeParameters, nil
}

func bindGeneral(f attrs.Fields, speciesIndex attrs.SpeciesIndex, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Propensity, error) {
	attrs.WarnUnknownKeys(logger, f, generalKnownKeys, "propensity:general")
	rate, err := f.RequireString("rate")
	if err != nil {
		return nil, malformed("general", err)
	}
	parsed, err := expr.Parse(rate)
	if err != nil {
		return nil, err
	}
	term, err := parsed.Bind(
		func(name string) (int, bool) { return speciesIndex(name) },
		func(name string) (int, bool) { return paramIndex(name) },
	)
	if err != nil {
		return nil, err
	}
	return &generalTerm{term: term}, nil
}
