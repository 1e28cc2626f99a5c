// Package events defines the topics and payloads a grid publishes.
//
// Subscribers receive event.Event[T] values where T is the payload type
// listed next to each topic.
package events
