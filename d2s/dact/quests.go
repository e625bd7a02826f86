package dact

import (
	"github.com/samber/lo"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquest"
)

func flagField(name string, flag *bool) Field {
	return Field{Name: name, Flag: flag}
}

func questFields(names []string, quests []dquest.Quest) []Field {
	return lo.Map(
		names,
		func(name string, i int) Field {
			return Field{Name: name, Quest: &quests[i]}
		},
	)
}

func (a *ActI) DenOfEvil() *dquest.Quest             { return &a.Quests[IndexDenOfEvil] }
func (a *ActI) SistersBurialGrounds() *dquest.Quest  { return &a.Quests[IndexSistersBurialGrounds] }
func (a *ActI) ToolsOfTheTrade() *dquest.Quest       { return &a.Quests[IndexToolsOfTheTrade] }
func (a *ActI) TheSearchForCain() *dquest.Quest      { return &a.Quests[IndexTheSearchForCain] }
func (a *ActI) TheForgottenTower() *dquest.Quest     { return &a.Quests[IndexTheForgottenTower] }
func (a *ActI) SistersToTheSlaughter() *dquest.Quest { return &a.Quests[IndexSistersToTheSlaughter] }

func (a *ActI) Name() string { return ActNames[0] }
func (a *ActI) Fields() []Field {
	return append(
		[]Field{flagField("talked_to_warriv", &a.TalkedToWarriv)},
		questFields(ActIQuestNames, a.Quests[:])...,
	)
}

func (a *ActII) RadamentsLair() *dquest.Quest    { return &a.Quests[IndexRadamentsLair] }
func (a *ActII) TheHoradricStaff() *dquest.Quest { return &a.Quests[IndexTheHoradricStaff] }
func (a *ActII) TaintedSun() *dquest.Quest       { return &a.Quests[IndexTaintedSun] }
func (a *ActII) ArcaneSanctuary() *dquest.Quest  { return &a.Quests[IndexArcaneSanctuary] }
func (a *ActII) TheSummoner() *dquest.Quest      { return &a.Quests[IndexTheSummoner] }
func (a *ActII) TheSevenTombs() *dquest.Quest    { return &a.Quests[IndexTheSevenTombs] }

func (a *ActII) Name() string { return ActNames[1] }
func (a *ActII) Fields() []Field {
	return append(
		[]Field{
			flagField("traveled_to_act", &a.TraveledToAct),
			flagField("talked_to_jerhyn", &a.TalkedToJerhyn),
		},
		questFields(ActIIQuestNames, a.Quests[:])...,
	)
}

func (a *ActIII) LamEsensTome() *dquest.Quest          { return &a.Quests[IndexLamEsensTome] }
func (a *ActIII) KhalimsWill() *dquest.Quest           { return &a.Quests[IndexKhalimsWill] }
func (a *ActIII) BladeOfTheOldReligion() *dquest.Quest { return &a.Quests[IndexBladeOfTheOldReligion] }
func (a *ActIII) TheGoldenBird() *dquest.Quest         { return &a.Quests[IndexTheGoldenBird] }
func (a *ActIII) TheBlackenedTemple() *dquest.Quest    { return &a.Quests[IndexTheBlackenedTemple] }
func (a *ActIII) TheGuardian() *dquest.Quest           { return &a.Quests[IndexTheGuardian] }

func (a *ActIII) Name() string { return ActNames[2] }
func (a *ActIII) Fields() []Field {
	return append(
		[]Field{
			flagField("traveled_to_act", &a.TraveledToAct),
			flagField("talked_to_hratli", &a.TalkedToHratli),
		},
		questFields(ActIIIQuestNames, a.Quests[:])...,
	)
}

func (a *ActIV) TheFallenAngel() *dquest.Quest { return &a.Quests[IndexTheFallenAngel] }
func (a *ActIV) TerrorsEnd() *dquest.Quest     { return &a.Quests[IndexTerrorsEnd] }
func (a *ActIV) Hellforge() *dquest.Quest      { return &a.Quests[IndexHellforge] }

func (a *ActIV) Name() string { return ActNames[3] }
func (a *ActIV) Fields() []Field {
	return append(
		[]Field{
			flagField("traveled_to_act", &a.TraveledToAct),
			flagField("talked_to_tyreal", &a.TalkedToTyreal),
		},
		questFields(ActIVQuestNames, a.Quests[:])...,
	)
}

func (a *ActV) SiegeOnHarrogath() *dquest.Quest    { return &a.Quests[IndexSiegeOnHarrogath] }
func (a *ActV) RescueOnMountArreat() *dquest.Quest { return &a.Quests[IndexRescueOnMountArreat] }
func (a *ActV) PrisonOfIce() *dquest.Quest         { return &a.Quests[IndexPrisonOfIce] }
func (a *ActV) BetrayalOfHarrogath() *dquest.Quest { return &a.Quests[IndexBetrayalOfHarrogath] }
func (a *ActV) RiteOfPassage() *dquest.Quest       { return &a.Quests[IndexRiteOfPassage] }
func (a *ActV) EveOfDestruction() *dquest.Quest    { return &a.Quests[IndexEveOfDestruction] }

func (a *ActV) Name() string { return ActNames[4] }
func (a *ActV) Fields() []Field {
	fields := []Field{
		flagField("traveled_to_act", &a.TraveledToAct),
		flagField("talked_to_cain", &a.TalkedToCain),
	}
	fields = append(fields, questFields(ActVQuestNames, a.Quests[:])...)
	fields = append(
		fields,
		flagField("reset_stats", &a.ResetStats),
		flagField("completed_difficulty", &a.CompletedDifficulty),
	)
	return fields
}
