package bdd

import (
	"fmt"

	"github.com/cucumber/godog"
)

func InitializeSubscriptionScenario(s *godog.ScenarioContext) {
	s.Step(`^"([^"]*)" is not subscribed to "([^"]*)"$`, isNotSubscribedTo)
	s.Step(`^"([^"]*)" is subscribed to "([^"]*)"$`, isSubscribedTo)
	s.Step(`^"([^"]*)" toggles the subscription to "([^"]*)"$`, togglesTheSubscriptionTo)
	s.Step(`^"([^"]*)" should be subscribed to "([^"]*)"$`, shouldBeSubscribedTo)
	s.Step(`^"([^"]*)" should not be subscribed to "([^"]*)"$`, shouldNotBeSubscribedTo)
}

// subscription edges keyed by "subscriber/channel"
var inMemorySubscriptions = map[string]bool{}

func edgeKey(subscriber, channel string) string {
	return subscriber + "/" + channel
}

func isNotSubscribedTo(subscriber, channel string) error {
	delete(inMemorySubscriptions, edgeKey(subscriber, channel))
	return nil
}

func isSubscribedTo(subscriber, channel string) error {
	inMemorySubscriptions[edgeKey(subscriber, channel)] = true
	return nil
}

func togglesTheSubscriptionTo(subscriber, channel string) error {
	key := edgeKey(subscriber, channel)
	if inMemorySubscriptions[key] {
		delete(inMemorySubscriptions, key)
	} else {
		inMemorySubscriptions[key] = true
	}
	return nil
}

func shouldBeSubscribedTo(subscriber, channel string) error {
	if !inMemorySubscriptions[edgeKey(subscriber, channel)] {
		return fmt.Errorf("%s is not subscribed to %s", subscriber, channel)
	}
	return nil
}

func shouldNotBeSubscribedTo(subscriber, channel string) error {
	if inMemorySubscriptions[edgeKey(subscriber, channel)] {
		return fmt.Errorf("%s is still subscribed to %s", subscriber, channel)
	}
	return nil
}
