package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/seftechub/checkout.api.seftechub.com/config"
)

// ProducerTopic is the topic to which the checkout processed kafka message is sent
const ProducerTopic = "checkout-processed"

// ProducerSchemaName is the schema which will be used to send the checkout processed kafka message with
const ProducerSchemaName = "checkout-processed"

// checkoutProcessed represents the avro schema held in the schema registry
type checkoutProcessed struct {
	CheckoutResourceID string `avro:"checkout_resource_id"`
}

// produceCheckoutMessage handles creating a producer, marshalling the
// checkout id into the correct avro schema and sending the message to the
// topic defined in ProducerTopic
func produceCheckoutMessage(checkoutID string) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("error getting config for kafka message production: [%v]", err)
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}
	checkoutProcessedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: checkoutProcessedSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(checkoutID, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceCheckoutMessage() to allow unit
// testing of the non-kafka portion of code
func prepareKafkaMessage(checkoutID string, checkoutProcessedSchema avro.Schema) (*producer.Message, error) {
	checkoutProcessedMessage := checkoutProcessed{CheckoutResourceID: checkoutID}

	messageBytes, err := checkoutProcessedSchema.Marshal(checkoutProcessedMessage)
	if err != nil {
		return nil, fmt.Errorf("error marshalling checkout processed message: [%v]", err)
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
