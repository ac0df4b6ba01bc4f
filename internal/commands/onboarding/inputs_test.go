package onboarding

import (
	"testing"

	"github.com/cercle-social/cercle-cli/internal/utils/test/assert"
	"github.com/cercle-social/cercle-cli/internal/utils/test/mock"

	"github.com/Netflix/go-expect"
)

func TestOnboardingInputs(t *testing.T) {
	for _, tc := range []struct {
		description    string
		inputs         inputs
		procedure      func(c *expect.Console)
		expectedInputs inputs
	}{
		{
			description: "should prompt for every answer",
			procedure: func(c *expect.Console) {
				c.ExpectString("Display name")
				c.SendLine("Ada Lovelace")
				c.ExpectString("Bio (optional)")
				c.SendLine("first programmer")
				c.ExpectString("Interests, separated by commas (optional)")
				c.SendLine("math, Engines ,,engines")
				c.ExpectEOF()
			},
			expectedInputs: inputs{DisplayName: "Ada Lovelace", Bio: "first programmer", Interests: []string{"math", "Engines"}},
		},
		{
			description: "should allow the optional answers to be skipped",
			inputs:      inputs{DisplayName: "Ada"},
			procedure: func(c *expect.Console) {
				c.ExpectString("Bio (optional)")
				c.SendLine("")
				c.ExpectString("Interests")
				c.SendLine("")
				c.ExpectEOF()
			},
			expectedInputs: inputs{DisplayName: "Ada", Interests: []string{}},
		},
		{
			description:    "should not prompt when flags provide the data",
			inputs:         inputs{DisplayName: "Ada", Bio: "poet", Interests: []string{" math", "MATH", "poetry"}},
			procedure:      func(c *expect.Console) {},
			expectedInputs: inputs{DisplayName: "Ada", Bio: "poet", Interests: []string{"math", "poetry"}},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			_, console, _, ui, consoleErr := mock.NewVT10XConsole()
			assert.Nil(t, consoleErr)
			defer console.Close()

			doneCh := make(chan (struct{}))
			go func() {
				defer close(doneCh)
				tc.procedure(console)
			}()

			assert.Nil(t, tc.inputs.Resolve(nil, ui))

			console.Tty().Close() // flush the writers
			<-doneCh              // wait for procedure to complete

			assert.Equal(t, tc.expectedInputs, tc.inputs)
		})
	}
}
